package wordplay

import "strings"

// RobberLanguage encodes s in the Swedish "rövarspråket": every rune that
// is neither a vowel nor a space is doubled with an "o" in between, so
// "this" becomes "tothohisos".
func RobberLanguage(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if IsVowel(r) || r == ' ' {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(r)
		sb.WriteRune('o')
		sb.WriteRune(r)
	}
	return sb.String()
}
