// Package pipelineerror defines the typed errors shared by the category tree,
// the filename codec and the CLI. Every message carries the offending input
// verbatim so the operator can correct the source data.
package pipelineerror

import "fmt"

// InvalidKeyError reports a category key that is not URL-safe.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid category key '%s': only letters, numbers, '-' and '_' are allowed", e.Key)
}

// DuplicateKeyError reports a sibling key collision on interactive insert.
type DuplicateKeyError struct {
	Key        string
	ParentPath string
}

func (e *DuplicateKeyError) Error() string {
	if e.ParentPath == "" {
		return fmt.Sprintf("category key '%s' already exists at the top level", e.Key)
	}
	return fmt.Sprintf("category key '%s' already exists under '%s'", e.Key, e.ParentPath)
}

// NotFoundError reports a category path that does not resolve in the tree.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("category path '%s' not found", e.Path)
}

// MalformedFilenameError reports a filename with fewer than the minimum
// number of delimited segments.
type MalformedFilenameError struct {
	Filename string
	Segments int
}

func (e *MalformedFilenameError) Error() string {
	return fmt.Sprintf("malformed filename '%s': expected at least 4 '_'-delimited segments, got %d", e.Filename, e.Segments)
}

// NoPriceFoundError reports a filename in which no segment right of the
// first parses as a decimal price.
type NoPriceFoundError struct {
	Filename string
}

func (e *NoPriceFoundError) Error() string {
	return fmt.Sprintf("no price segment found in filename '%s'", e.Filename)
}
