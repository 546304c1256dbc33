package wordplay

import "strings"

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(runes) - 1; i >= 0; i-- {
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// IsPalindrome reports whether s reads the same forwards and backwards.
// The comparison is exact; see [IsPalindromePhrase] for the lenient form.
func IsPalindrome(s string) bool {
	return s == Reverse(s)
}
