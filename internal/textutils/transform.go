// Package textutils provides the text transforms used by the filename
// convention and category aliases.
package textutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleCase capitalizes each word, lowering the rest ("mega man FIGURE" ->
// "Mega Man Figure").
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// HyphensToSpaces converts a hyphenated filename segment to display text.
func HyphensToSpaces(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// SpacesToHyphens converts display text to a filename segment.
func SpacesToHyphens(s string) string {
	return strings.ReplaceAll(s, " ", "-")
}
