// Package generator builds the local product collection and the operator's
// import CSV from the catalog service's image file listing. Filenames are
// the source of truth; a malformed one is logged and skipped, never fatal
// to the batch.
package generator

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"rewindfinds/shopflow/internal/describer"
	"rewindfinds/shopflow/internal/filenamecodec"
	"rewindfinds/shopflow/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Result holds the artifacts of one generation run.
type Result struct {
	Products []models.Product
	CSVRows  []models.ShopifyCSVRow
	// Skipped lists the filenames that failed to decode, surfaced to the
	// operator so the source data can be fixed.
	Skipped []string
}

// Build decodes every image filename into a product record and its import
// CSV row. Descriptions come from the describer collaborator; its content is
// opaque to the pipeline.
func Build(ctx context.Context, images []models.ImageFile, desc describer.Describer, vendor string) Result {
	var result Result
	for _, img := range images {
		filename := filenameFromURL(img.URL)
		d, err := filenamecodec.Decode(filename)
		if err != nil {
			log.WithError(err).WithField("filename", filename).Warn("Skipping file with undecodable name")
			result.Skipped = append(result.Skipped, filename)
			continue
		}

		description, err := desc.Describe(ctx, d.Title, d.Tags(), img.URL)
		if err != nil {
			log.WithError(err).WithField("title", d.Title).Warn("Description generation failed, using fallback")
			description, _ = describer.Static{}.Describe(ctx, d.Title, d.Tags(), img.URL)
		}

		product := models.Product{
			ID:          d.Handle(),
			Name:        d.Title,
			Description: description,
			Details:     description,
			Price:       d.Price,
			Images:      []string{img.URL},
			Status:      "available",
			Quantity:    1,
		}
		product.SetCategories(d.CategoryPath)
		result.Products = append(result.Products, product)

		result.CSVRows = append(result.CSVRows, models.ShopifyCSVRow{
			Handle:       d.Handle(),
			Title:        d.Title,
			BodyHTML:     description,
			Vendor:       vendor,
			Tags:         strings.Join(d.Tags(), ", "),
			Published:    "TRUE",
			Option1Name:  "Title",
			Option1Value: "Default Title",
			InventoryQty: 1,
			VariantPrice: d.Price,
			ImageSrc:     img.URL,
		})
	}

	log.WithFields(logrus.Fields{
		"products": len(result.Products),
		"skipped":  len(result.Skipped),
	}).Info("Generation completed")
	return result
}

// filenameFromURL isolates the file name from a CDN URL, dropping any query
// string.
func filenameFromURL(url string) string {
	name := url
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "?"); i != -1 {
		name = name[:i]
	}
	return name
}
