// Package store persists the pipeline's interchange files: the products.js
// script consumed by the static frontend, the canonical category path list,
// and the product import CSV reviewed by the operator.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"rewindfinds/shopflow/internal/models"
)

// ProductsVariable is the global the frontend reads the product array from.
const ProductsVariable = "window.products"

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadProducts reads the product collection out of a products.js script
// file. The JSON array is located between the first '[' and the last ']' so
// the surrounding assignment and semicolon do not matter.
func LoadProducts(path string) ([]models.Product, error) {
	log.WithField("file", path).Info("Loading products file")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading products file: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start > end {
		return nil, fmt.Errorf("could not find JSON array in products file %s", path)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(text[start:end+1]), &products); err != nil {
		return nil, fmt.Errorf("error parsing products file %s: %w", path, err)
	}

	log.WithField("count", len(products)).Info("Successfully loaded products")
	return products, nil
}

// WriteProducts writes the product collection back as a script assigning the
// JSON array to the well-known global.
func WriteProducts(products []models.Product, path string) error {
	if products == nil {
		return fmt.Errorf("cannot write nil products")
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(products),
	}).Info("Writing products file")

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding products: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	content := ProductsVariable + " = " + string(data) + ";\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing products file: %w", err)
	}
	return nil
}
