package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CatalogVariant is a single purchasable variant of an external catalog
// product. IDs are kept as json.Number so the externally issued identifier
// round-trips without precision loss.
type CatalogVariant struct {
	ID    json.Number     `json:"id"`
	Price decimal.Decimal `json:"price"`
}

// CatalogProduct is a read-only product record fetched from the external
// catalog service.
type CatalogProduct struct {
	ID       json.Number      `json:"id"`
	Title    string           `json:"title"`
	Variants []CatalogVariant `json:"variants"`
}

// ImageFile is one entry of the catalog service's file listing. The filename
// embedded in the URL is the source of truth for product generation.
type ImageFile struct {
	URL            string
	AltText        string
	OriginalSource string
}

// ShopifyCSVRow is one row of the product import CSV reviewed and uploaded
// manually by the operator. Column headers are fixed by the import format.
type ShopifyCSVRow struct {
	Handle       string          `csv:"Handle"`
	Title        string          `csv:"Title"`
	BodyHTML     string          `csv:"Body (HTML)"`
	Vendor       string          `csv:"Vendor"`
	Tags         string          `csv:"Tags"`
	Published    string          `csv:"Published"`
	Option1Name  string          `csv:"Option1 Name"`
	Option1Value string          `csv:"Option1 Value"`
	InventoryQty int             `csv:"Variant Inventory Qty"`
	VariantPrice decimal.Decimal `csv:"Variant Price"`
	ImageSrc     string          `csv:"Image Src"`
}
