// Package matcher reconciles local product records against an external
// catalog snapshot by (normalized title, price) key, filling externally
// issued variant ids and reporting records that found no match.
package matcher

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"rewindfinds/shopflow/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// matchKey joins local and external records. Titles are matched with
// surrounding whitespace stripped; prices by decimal value, so 89.99 and
// 89.990 are the same key.
type matchKey struct {
	title string
	price string
}

func keyFor(title string, price decimal.Decimal) matchKey {
	return matchKey{
		title: strings.TrimSpace(title),
		price: price.StringFixed(2),
	}
}

// Report summarizes one matching run. Unmatched records are not errors:
// each one is a product that exists locally with no externally issued
// identifier yet, a state requiring human follow-up.
type Report struct {
	Updated    int
	Collisions int
	Unmatched  []string
}

// buildIndex maps every variant of the catalog snapshot by match key. When
// two variants share a key the first insertion wins deterministically; the
// collision is counted and logged rather than silently overwritten.
func buildIndex(catalog []models.CatalogProduct) (map[matchKey]string, int) {
	index := make(map[matchKey]string)
	collisions := 0
	for _, product := range catalog {
		for _, variant := range product.Variants {
			k := keyFor(product.Title, variant.Price)
			if existing, ok := index[k]; ok {
				collisions++
				log.WithFields(logrus.Fields{
					"title":   product.Title,
					"price":   variant.Price.String(),
					"kept":    existing,
					"ignored": variant.ID.String(),
				}).Warn("Duplicate match key in catalog snapshot, keeping first variant")
				continue
			}
			index[k] = variant.ID.String()
		}
	}
	return index, collisions
}

// Match fills ShopifyVariantID on every local product whose key appears in
// the catalog snapshot. The local collection is mutated in place but never
// shrunk or reordered; the catalog is read-only. Misses are collected into
// the report, not escalated.
func Match(products []models.Product, catalog []models.CatalogProduct) Report {
	index, collisions := buildIndex(catalog)
	report := Report{Collisions: collisions}

	for i := range products {
		k := keyFor(products[i].Name, products[i].Price)
		id, ok := index[k]
		if !ok {
			report.Unmatched = append(report.Unmatched, products[i].ID)
			continue
		}
		products[i].ShopifyVariantID = id
		report.Updated++
	}

	log.WithFields(logrus.Fields{
		"updated":   report.Updated,
		"unmatched": len(report.Unmatched),
	}).Info("Matching completed")
	return report
}
