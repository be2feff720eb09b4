package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TagLabels are the fixed ordinal labels paired with category segments when
// generating product tags. Segments deeper than the label list produce no tag
// but are retained in the category path.
var TagLabels = []string{"category", "subcategory1", "subcategory2", "subcategory3", "subcategory4"}

// ProductDescriptor is the structured form of an encoded product filename:
// category path, display title, price and free-text notes, plus the short
// digest of the original filename that keeps derived identifiers unique.
type ProductDescriptor struct {
	CategoryPath CategoryPath
	Title        string
	Price        decimal.Decimal
	Notes        string
	Salt         string

	// TitleSegment is the raw hyphenated title segment as it appeared in the
	// filename, kept so the derived handle matches the filename exactly.
	TitleSegment string
}

// Handle derives the unique product identifier: the lowercased category and
// title segments joined by hyphens, suffixed with the filename salt. Two
// otherwise identical products always differ in the salt.
func (d ProductDescriptor) Handle() string {
	parts := make([]string, 0, len(d.CategoryPath)+1)
	parts = append(parts, d.CategoryPath...)
	parts = append(parts, d.TitleSegment)
	base := strings.ToLower(strings.Join(parts, "-"))
	if d.Salt == "" {
		return base
	}
	return base + "-" + d.Salt
}

// Tags pairs each category segment with its ordinal label, up to the
// supported depth.
func (d ProductDescriptor) Tags() []string {
	tags := make([]string, 0, len(d.CategoryPath))
	for i, seg := range d.CategoryPath {
		if i >= len(TagLabels) {
			break
		}
		tags = append(tags, TagLabels[i]+":"+seg)
	}
	return tags
}
