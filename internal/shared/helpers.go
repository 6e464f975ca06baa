// Package shared provides common utility functions used across multiple
// packages in the recipekit codebase.
package shared

import (
	"sort"
	"strings"
)

// NormalizeRecipeName lowercases and trims a recipe name so lookups are
// insensitive to how the caller spelled it.
func NormalizeRecipeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// SortedKeys returns the keys of a string-keyed map in ascending order.
func SortedKeys[V any](input map[string]V) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
