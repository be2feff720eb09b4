package matcher

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewindfinds/shopflow/internal/models"
)

func catalogEntry(title, variantID string, price float64) models.CatalogProduct {
	return models.CatalogProduct{
		ID:    json.Number("1"),
		Title: title,
		Variants: []models.CatalogVariant{
			{ID: json.Number(variantID), Price: decimal.NewFromFloat(price)},
		},
	}
}

func TestMatchFillsVariantID(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Atari 2600", Price: decimal.NewFromFloat(89.99)},
	}
	catalog := []models.CatalogProduct{catalogEntry("Atari 2600", "999", 89.99)}

	report := Match(products, catalog)

	assert.Equal(t, "999", products[0].ShopifyVariantID)
	assert.Equal(t, 1, report.Updated)
	assert.Empty(t, report.Unmatched)
}

func TestMatchLeavesMissesUntouched(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Atari 2600", Price: decimal.NewFromFloat(89.99)},
		{ID: "p2", Name: "Mega Man Figure", Price: decimal.NewFromFloat(24.50), ShopifyVariantID: "old"},
	}
	catalog := []models.CatalogProduct{catalogEntry("Atari 2600", "999", 89.99)}

	report := Match(products, catalog)

	require.Len(t, products, 2, "matching must never shrink the collection")
	assert.Equal(t, "999", products[0].ShopifyVariantID)
	assert.Equal(t, "old", products[1].ShopifyVariantID, "a miss leaves the record as it was")
	assert.Equal(t, []string{"p2"}, report.Unmatched)
}

func TestMatchNormalizesTitleWhitespace(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "  Atari 2600 ", Price: decimal.NewFromFloat(89.99)},
	}
	catalog := []models.CatalogProduct{catalogEntry("Atari 2600", "999", 89.99)}

	Match(products, catalog)
	assert.Equal(t, "999", products[0].ShopifyVariantID)
}

func TestMatchComparesPricesByValue(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Atari 2600", Price: decimal.RequireFromString("89.990")},
	}
	catalog := []models.CatalogProduct{catalogEntry("Atari 2600", "999", 89.99)}

	report := Match(products, catalog)
	assert.Equal(t, "999", products[0].ShopifyVariantID)
	assert.Equal(t, 1, report.Updated)
}

func TestMatchKeepsFirstVariantOnCollision(t *testing.T) {
	catalog := []models.CatalogProduct{
		catalogEntry("Atari 2600", "111", 89.99),
		catalogEntry("Atari 2600", "222", 89.99),
	}
	products := []models.Product{
		{ID: "p1", Name: "Atari 2600", Price: decimal.NewFromFloat(89.99)},
	}

	report := Match(products, catalog)

	assert.Equal(t, "111", products[0].ShopifyVariantID)
	assert.Equal(t, 1, report.Collisions)
}
