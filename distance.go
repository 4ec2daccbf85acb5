package dym

import "github.com/agext/levenshtein"

// DistanceFunc measures the edit distance between two strings, counting in
// runes. Implementations must satisfy distance(a,a)==0, symmetry, and the
// triangle inequality.
type DistanceFunc func(a, b string) int

// Levenshtein is the default distance primitive: standard Levenshtein edit
// distance with each code point counting as one unit.
func Levenshtein(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}
