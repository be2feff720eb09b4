package categorytree

import (
	"sort"

	"rewindfinds/shopflow/internal/models"
)

// NextOptions computes the valid next-level keys for a partially selected
// path prefix: the distinct first-unmatched segments among canonical paths
// sharing that prefix, sorted for stable presentation. An empty result means
// the prefix is itself a complete canonical path (or matches nothing).
//
// Selection state belongs to the caller; recomputing after every pick keeps
// invalid combinations structurally unreachable.
func NextOptions(paths []models.CategoryPath, prefix models.CategoryPath) []string {
	seen := map[string]struct{}{}
	var options []string
	for _, path := range paths {
		if !path.HasPrefix(prefix) || len(path) <= len(prefix) {
			continue
		}
		next := path[len(prefix)]
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		options = append(options, next)
	}
	sort.Strings(options)
	return options
}

// IsCanonical reports whether the selection exactly matches one of the
// canonical paths.
func IsCanonical(paths []models.CategoryPath, selection models.CategoryPath) bool {
	for _, path := range paths {
		if path.Equal(selection) {
			return true
		}
	}
	return false
}
