package dym

import "unicode/utf8"

// Threshold derives the edit-distance tolerance from the word itself: words
// of up to four runes tolerate a single edit, longer words a third of their
// rune count (truncated). There is no upper bound; long words get
// proportionally more slack.
//
// Counting runes rather than bytes keeps the tolerance in the same unit the
// distance primitive measures in.
func Threshold(word string) int {
	length := utf8.RuneCountInString(word)
	if length <= 4 {
		return 1
	}
	return length / 3
}
