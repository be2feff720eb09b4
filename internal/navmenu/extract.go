package navmenu

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rewindfinds/shopflow/internal/models"
)

var paramPattern = regexp.MustCompile(`[?&](category|subcategory\d*)=([\w\-]+)`)

// Extract pulls the canonical category paths out of existing nav markup.
// Links are visited in markup document order, which becomes the canonical
// nav order downstream tools rely on. Parameters are sorted by name so
// category always precedes subcategory1, subcategory2, ... regardless of how
// the source markup ordered them. Duplicate paths keep their first-seen
// position and are never reordered.
func Extract(r io.Reader) ([]models.CategoryPath, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nav markup: %w", err)
	}

	var paths []models.CategoryPath
	seen := map[string]struct{}{}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.Contains(href, CategoryPage) {
			return
		}
		path := pathFromHref(href)
		if path == nil {
			return
		}
		id := path.String()
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		paths = append(paths, path)
	})

	log.WithField("count", len(paths)).Debug("Extracted category paths from nav markup")
	return paths, nil
}

type param struct {
	name  string
	value string
}

func pathFromHref(href string) models.CategoryPath {
	matches := paramPattern.FindAllStringSubmatch(href, -1)
	if len(matches) == 0 {
		return nil
	}
	params := make([]param, 0, len(matches))
	for _, m := range matches {
		params = append(params, param{name: m[1], value: m[2]})
	}
	sort.SliceStable(params, func(i, j int) bool { return params[i].name < params[j].name })

	path := make(models.CategoryPath, 0, len(params))
	for _, p := range params {
		path = append(path, p.value)
	}
	return path
}
