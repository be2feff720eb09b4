package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewindfinds/shopflow/internal/models"
)

func TestProductsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.js")

	products := []models.Product{
		{
			ID:       "toys-mega-man-abc123",
			Name:     "Mega Man Figure",
			Price:    decimal.RequireFromString("24.50"),
			Category: "toys",
			Images:   []string{"https://cdn.example.com/toys_Mega-Man-Figure_24.5.png"},
			Status:   "available",
			Quantity: 1,
		},
	}

	require.NoError(t, WriteProducts(products, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "window.products = ["))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(content), "];"))
	assert.Contains(t, content, `"price": 24.5`, "prices are bare JSON numbers")

	loaded, err := LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, products[0].ID, loaded[0].ID)
	assert.Equal(t, products[0].Name, loaded[0].Name)
	assert.True(t, products[0].Price.Equal(loaded[0].Price))
}

func TestLoadProductsRejectsMissingArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.js")
	require.NoError(t, os.WriteFile(path, []byte("window.products = null;"), 0644))

	_, err := LoadProducts(path)
	assert.Error(t, err)
}

func TestWriteProductsRejectsNil(t *testing.T) {
	err := WriteProducts(nil, filepath.Join(t.TempDir(), "products.js"))
	assert.Error(t, err)
}

func TestPathsRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "valid_category_paths.yaml")

	paths := []models.CategoryPath{
		{"video-games", "atari", "consoles"},
		{"video-games", ""},
		{"toys", "figures"},
		{"vinyl"},
	}

	require.NoError(t, WritePaths(paths, path))

	loaded, err := LoadPaths(path)
	require.NoError(t, err)
	assert.Equal(t, paths, loaded)
}

func TestWriteShopifyCSVHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shopify_upload.csv")

	rows := []models.ShopifyCSVRow{
		{
			Handle:       "toys-mega-man-abc123",
			Title:        "Mega Man Figure",
			Vendor:       "Rewind the Finds",
			Tags:         "category:toys",
			Published:    "TRUE",
			Option1Name:  "Title",
			Option1Value: "Default Title",
			InventoryQty: 1,
			VariantPrice: decimal.RequireFromString("24.50"),
			ImageSrc:     "https://cdn.example.com/toys_Mega-Man-Figure_24.5.png",
		},
	}

	require.NoError(t, WriteShopifyCSV(rows, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"Handle,Title,Body (HTML),Vendor,Tags,Published,Option1 Name,Option1 Value,Variant Inventory Qty,Variant Price,Image Src",
		lines[0])
	assert.Contains(t, lines[1], "toys-mega-man-abc123")
	assert.Contains(t, lines[1], "24.5")
}
