// Package models defines the domain types shared by the catalog pipeline:
// category paths, product descriptors, local product records and the
// external catalog snapshot types.
package models

import "strings"

// BlankKeyLabel is the display placeholder for the catch-all (empty) category key.
const BlankKeyLabel = "(blank)"

// CategoryPath is an ordered sequence of category keys from the hierarchy
// root down to a leaf. It is the only type shared between the tree, the
// menu codec and the filename codec.
type CategoryPath []string

// String renders the path for log and error messages.
func (p CategoryPath) String() string {
	parts := make([]string, len(p))
	for i, key := range p {
		if key == "" {
			parts[i] = BlankKeyLabel
		} else {
			parts[i] = key
		}
	}
	return strings.Join(parts, "/")
}

// Equal reports whether two paths have identical segments.
func (p CategoryPath) Equal(other CategoryPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the path starts with the given prefix.
func (p CategoryPath) HasPrefix(prefix CategoryPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the path.
func (p CategoryPath) Clone() CategoryPath {
	out := make(CategoryPath, len(p))
	copy(out, p)
	return out
}
