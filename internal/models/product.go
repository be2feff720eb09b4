package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// products.js carries prices as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a locally generated product record as stored in the products.js
// interchange file. The field set mirrors what the static frontend consumes;
// only Name, Price and ShopifyVariantID participate in matching.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Details          string          `json:"details"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	Subcategory1     string          `json:"subcategory1"`
	Subcategory2     string          `json:"subcategory2"`
	Subcategory3     string          `json:"subcategory3"`
	Subcategory4     string          `json:"subcategory4"`
	Images           []string        `json:"images"`
	ShopifyEmbed     string          `json:"shopifyEmbed"`
	ShopifyVariantID string          `json:"shopifyVariantId"`
	Status           string          `json:"status"`
	Quantity         int             `json:"quantity"`
	Featured         bool            `json:"featured"`
}

// SetCategories fills the fixed category columns from a category path.
// Segments beyond the supported depth are dropped from the columns but
// remain part of the path the product was decoded from.
func (p *Product) SetCategories(path CategoryPath) {
	cols := []*string{&p.Category, &p.Subcategory1, &p.Subcategory2, &p.Subcategory3, &p.Subcategory4}
	for i, col := range cols {
		if i < len(path) {
			*col = path[i]
		} else {
			*col = ""
		}
	}
}

// ParsePrice parses a price string into a decimal, preserving the original
// text in the error so the operator can fix the source data.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price '%s': %w", s, err)
	}
	return d, nil
}
