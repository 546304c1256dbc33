package wordplay

import "strings"

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rotation      = 13
)

// rot13Table maps each of the 52 ASCII letters to the letter 13 places away
// in its own case. It is filled once by init and only read afterwards.
var rot13Table = make(map[rune]rune, 2*len(lowerAlphabet))

func init() {
	for _, alphabet := range []string{lowerAlphabet, upperAlphabet} {
		letters := []rune(alphabet)
		for i, r := range letters {
			rot13Table[r] = letters[(i+rotation)%len(letters)]
		}
	}
}

// Rot13 replaces every ASCII letter in s with the letter 13 positions away
// in the same case, wrapping around the alphabet. Any other rune, including
// non-ASCII letters and invalid UTF-8, is copied byte for byte. Rot13 is
// its own inverse and preserves the length of s.
func Rot13(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	// Bytes of multi-byte sequences are all >= 0x80 and never in the table.
	for i := 0; i < len(s); i++ {
		b := s[i]
		if sub, ok := rot13Table[rune(b)]; ok {
			b = byte(sub)
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
