// Package navmenu converts the category tree to nested navigation markup and
// extracts canonical category paths back out of existing markup.
package navmenu

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"rewindfinds/shopflow/internal/categorytree"
)

// CategoryPage is the link target that marks a nav link as a category link.
const CategoryPage = "category.html"

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Render produces the full nav markup for the site: the scaffold (hamburger
// toggle, cart link) around the nested category menu. Group nodes become
// collapsible toggles labeled by alias; leaves become category links.
func Render(tree *categorytree.Tree) string {
	lines := []string{
		"<!-- NAV Starts Here!!! -->",
		"<nav>",
		`  <button class="hamburger" aria-label="Menu" aria-controls="mobile-nav" aria-expanded="false">`,
		"    <span></span><span></span><span></span>",
		"  </button>",
	}
	lines = append(lines, renderList(tree.Roots(), 2, nil)...)
	lines = append(lines,
		`  <div class="nav-bar-spacer"></div>`,
		`    <a href="cart.html" class="cart-link" aria-label="View cart">`,
		`      <span class="cart-icon">&#128722;</span>`,
		`      <span class="cart-count" id="cart-count">0</span>`,
		`    </a>`,
		"</nav>",
		"<!-- NAV Ends Here!!! -->",
	)
	return strings.Join(lines, "\n")
}

func renderList(nodes []*categorytree.Node, indent int, parentKeys []string) []string {
	pad := strings.Repeat(" ", indent)
	ulAttrs := ` class="submenu"`
	if indent == 2 {
		ulAttrs = ` class="nav-content" id="mobile-nav"`
	}
	lines := []string{fmt.Sprintf("%s<ul%s>", pad, ulAttrs)}
	for _, node := range nodes {
		keys := append(append([]string{}, parentKeys...), node.Key)
		if !node.IsLeaf() {
			lines = append(lines, fmt.Sprintf("%s  <li>", pad))
			lines = append(lines, fmt.Sprintf(`%s    <button class="submenu-toggle" aria-expanded="false">%s</button>`, pad, node.Alias))
			lines = append(lines, renderList(node.Children(), indent+4, keys)...)
			lines = append(lines, fmt.Sprintf("%s  </li>", pad))
			continue
		}
		lines = append(lines, fmt.Sprintf(`%s  <li><a href="%s" class="nav-link">%s</a></li>`, pad, leafURL(keys), node.Alias))
	}
	lines = append(lines, fmt.Sprintf("%s</ul>", pad))
	return lines
}

// leafURL encodes a full category path as ordered query parameters. The
// first non-empty segment is the primary category; each later non-empty
// segment becomes subcategory1, subcategory2, ... Catch-all (empty) segments
// contribute no parameter but still consume a tree level.
func leafURL(keys []string) string {
	var params []string
	subIdx := 1
	for _, key := range keys {
		if key == "" {
			continue
		}
		if len(params) == 0 {
			params = append(params, "category="+key)
		} else {
			params = append(params, fmt.Sprintf("subcategory%d=%s", subIdx, key))
			subIdx++
		}
	}
	if len(params) == 0 {
		return CategoryPage
	}
	return CategoryPage + "?" + strings.Join(params, "&")
}
