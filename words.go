package wordplay

import (
	"strings"
	"unicode/utf8"
)

// WordLengths returns the rune length of each word.
func WordLengths(words []string) []int {
	out := make([]int, len(words))
	for i, w := range words {
		out[i] = utf8.RuneCountInString(w)
	}
	return out
}

// LongestWord returns the first of the longest words, or "" when words is
// empty.
func LongestWord(words []string) string {
	var longest string
	n := 0
	for _, w := range words {
		if l := utf8.RuneCountInString(w); l > n {
			longest, n = w, l
		}
	}
	return longest
}

// FilterLongWords returns the words that are strictly longer than n runes,
// in their original order.
func FilterLongWords(n int, words []string) []string {
	var out []string
	for _, w := range words {
		if utf8.RuneCountInString(w) > n {
			out = append(out, w)
		}
	}
	return out
}

// Histogram draws one line of asterisks per count. Negative counts draw an
// empty line.
func Histogram(counts []int) string {
	var sb strings.Builder
	for _, c := range counts {
		if c > 0 {
			sb.WriteString(strings.Repeat("*", c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
