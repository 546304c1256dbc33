package wordplay

import (
	"strings"
	"unicode"
)

// IsPangram reports whether s contains every letter a through z at least
// once, ignoring case.
func IsPangram(s string) bool {
	s = strings.ToLower(s)
	for _, r := range lowerAlphabet {
		if !strings.ContainsRune(s, r) {
			return false
		}
	}
	return true
}

// IsPalindromePhrase reports whether the letters of s, lower cased and with
// everything else removed, read the same in both directions.
//
//	IsPalindromePhrase("Go hang a salami I'm a lasagna hog.") // true
func IsPalindromePhrase(s string) bool {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return IsPalindrome(sb.String())
}
