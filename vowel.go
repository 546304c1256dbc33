package wordplay

// IsVowel reports whether r is one of the lower case vowels a, e, i, o, u.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
