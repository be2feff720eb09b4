// Package filenamecodec implements the product filename convention:
//
//	{cat1}_{cat2}_..._{catN}_{Title-With-Hyphens}_{price}[_{extra-notes}].{ext}
//
// The category depth is variable, so decoding anchors on the price: scanning
// segments right to left, the first one that parses as a decimal is the
// price. A bare-number title or note segment can therefore be mistaken for
// the price; that is an accepted limitation of the naming convention, not
// something the decoder tries to outsmart.
package filenamecodec

import (
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/pipelineerror"
	"rewindfinds/shopflow/internal/textutils"
)

// Delimiter separates filename segments.
const Delimiter = "_"

// DefaultExtension is appended by Encode when the descriptor does not carry one.
const DefaultExtension = ".png"

const minSegments = 4

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Decode parses a product filename into its descriptor. The salt is a short
// digest of the entire original filename string, so two files that decode to
// identical category/title/price still derive distinct handles.
func Decode(filename string) (models.ProductDescriptor, error) {
	base := filepath.Base(filename)
	name := base
	// Only strip a real file extension. A trailing ".digits" run is a price
	// fraction, and a candidate containing the delimiter means the last dot
	// belonged to a price inside the name, not to an extension.
	if ext := filepath.Ext(base); ext != "" && !digitsOnly(ext[1:]) && !strings.Contains(ext, Delimiter) {
		name = strings.TrimSuffix(base, ext)
	}

	segments := strings.Split(name, Delimiter)
	if len(segments) < minSegments {
		return models.ProductDescriptor{}, &pipelineerror.MalformedFilenameError{
			Filename: filename,
			Segments: len(segments),
		}
	}

	// The first segment is never a price candidate: a title segment always
	// precedes the price.
	priceIdx := -1
	var price decimal.Decimal
	for i := len(segments) - 1; i >= 1; i-- {
		if d, err := decimal.NewFromString(segments[i]); err == nil {
			priceIdx = i
			price = d
			break
		}
	}
	if priceIdx == -1 {
		return models.ProductDescriptor{}, &pipelineerror.NoPriceFoundError{Filename: filename}
	}

	titleSegment := segments[priceIdx-1]
	notes := ""
	if priceIdx+1 < len(segments) {
		notes = textutils.HyphensToSpaces(strings.Join(segments[priceIdx+1:], Delimiter))
	}

	d := models.ProductDescriptor{
		CategoryPath: models.CategoryPath(segments[:priceIdx-1]).Clone(),
		Title:        textutils.TitleCase(textutils.HyphensToSpaces(titleSegment)),
		Price:        price,
		Notes:        notes,
		Salt:         Salt(filename),
		TitleSegment: titleSegment,
	}
	log.WithFields(logrus.Fields{
		"filename": filename,
		"path":     d.CategoryPath.String(),
		"title":    d.Title,
		"price":    d.Price.String(),
	}).Debug("Decoded product filename")
	return d, nil
}

// Encode is the inverse of Decode, used for preview and suggestion tooling.
// Spaces in the title and notes become hyphens; ext defaults to ".png".
func Encode(d models.ProductDescriptor, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	parts := make([]string, 0, len(d.CategoryPath)+3)
	parts = append(parts, d.CategoryPath...)
	title := d.TitleSegment
	if title == "" {
		title = textutils.SpacesToHyphens(d.Title)
	}
	parts = append(parts, title, d.Price.String())
	if d.Notes != "" {
		parts = append(parts, textutils.SpacesToHyphens(d.Notes))
	}
	return strings.Join(parts, Delimiter) + ext
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Salt computes the 6-hex-character digest of the full original filename
// used to keep derived handles unique.
func Salt(filename string) string {
	sum := sha1.Sum([]byte(filename))
	return hex.EncodeToString(sum[:])[:6]
}
