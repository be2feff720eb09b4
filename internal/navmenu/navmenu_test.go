package navmenu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewindfinds/shopflow/internal/categorytree"
	"rewindfinds/shopflow/internal/models"
)

func TestRenderLeafLinks(t *testing.T) {
	tree := categorytree.FromPathList([]models.CategoryPath{
		{"video-games", "atari"},
		{"toys"},
	})

	markup := Render(tree)

	assert.Contains(t, markup, `<ul class="nav-content" id="mobile-nav">`)
	assert.Contains(t, markup, `<ul class="submenu">`)
	assert.Contains(t, markup, `<button class="submenu-toggle" aria-expanded="false">Video Games</button>`)
	assert.Contains(t, markup, `<a href="category.html?category=video-games&subcategory1=atari" class="nav-link">Atari</a>`)
	assert.Contains(t, markup, `<a href="category.html?category=toys" class="nav-link">Toys</a>`)
	assert.Contains(t, markup, `href="cart.html"`)
}

func TestRenderSkipsCatchAllSegments(t *testing.T) {
	// The blank key consumes a tree level but contributes no parameter, and
	// subcategory numbering does not skip a slot for it.
	tree := categorytree.FromPathList([]models.CategoryPath{
		{"video-games", "", "consoles"},
	})

	markup := Render(tree)
	assert.Contains(t, markup, `href="category.html?category=video-games&subcategory1=consoles"`)
	assert.NotContains(t, markup, "subcategory2=")
}

func TestExtractRenderRoundTrip(t *testing.T) {
	paths := []models.CategoryPath{
		{"video-games", "atari", "consoles"},
		{"video-games", "atari", "games"},
		{"video-games", "nintendo"},
		{"toys", "figures"},
		{"vinyl"},
	}
	tree := categorytree.FromPathList(paths)

	extracted, err := Extract(strings.NewReader(Render(tree)))
	require.NoError(t, err)
	assert.Equal(t, tree.Flatten(), extracted)
}

func TestExtractSortsParametersByName(t *testing.T) {
	// Attribute order in the source markup must not matter.
	markup := `<nav><ul class="nav-content">
		<li><a href="category.html?subcategory1=atari&category=video-games" class="nav-link">Atari</a></li>
	</ul></nav>`

	paths, err := Extract(strings.NewReader(markup))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, models.CategoryPath{"video-games", "atari"}, paths[0])
}

func TestExtractDedupKeepsFirstSeenOrder(t *testing.T) {
	markup := `<nav><ul class="nav-content">
		<li><a href="category.html?category=b" class="nav-link">B</a></li>
		<li><a href="category.html?category=a" class="nav-link">A</a></li>
		<li><a href="category.html?category=b" class="nav-link">B again</a></li>
	</ul></nav>`

	paths, err := Extract(strings.NewReader(markup))
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryPath{{"b"}, {"a"}}, paths)
}

func TestExtractIgnoresNonCategoryLinks(t *testing.T) {
	markup := `<nav>
		<a href="cart.html" class="cart-link">Cart</a>
		<a href="index.html">Home</a>
		<ul class="nav-content">
			<li><a href="category.html?category=toys" class="nav-link">Toys</a></li>
		</ul>
	</nav>`

	paths, err := Extract(strings.NewReader(markup))
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryPath{{"toys"}}, paths)
}
