// Package strings provides string list helpers for configuration and input
// normalization.
package strings

import (
	"strings"
)

// SplitList flattens values that may themselves be comma separated, trims
// each element and drops empties and duplicates. Order of first occurrence
// is preserved.
//
//	SplitList([]string{"a:9092, b:9092", "a:9092", " "})
//	// Returns: []string{"a:9092", "b:9092"}
func SplitList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			result = append(result, part)
		}
	}
	return result
}

// DedupeFold removes case-insensitive duplicates, keeping the first spelling.
func DedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, strings.TrimSpace(v))
	}
	return result
}
