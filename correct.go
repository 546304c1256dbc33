package wordplay

import "regexp"

var (
	// RE2's \s is ASCII only; \p{Z} adds the Unicode spaces.
	whitespaceRegexp = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)
	// RE2 has no lookahead, so the following word character is captured
	// and written back.
	periodRegexp = regexp.MustCompile(`\.([\p{L}\p{N}_])`)
)

// Correct collapses every run of whitespace in s to a single space and then
// puts a space after any period that is directly followed by a word
// character (any letter, digit or underscore). Applying it twice gives the same result as applying it once.
//
//	Correct("This is  very funny  and    cool.Indeed!")
//	// "This is very funny and cool. Indeed!"
func Correct(s string) string {
	s = whitespaceRegexp.ReplaceAllString(s, " ")
	return periodRegexp.ReplaceAllString(s, ". $1")
}
