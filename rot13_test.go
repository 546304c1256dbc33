package wordplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRot13(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "sentence", in: "Caesar cipher? I much prefer Caesar salad!", want: "Pnrfne pvcure? V zhpu cersre Pnrfne fnynq!"},
		{name: "empty", in: "", want: ""},
		{name: "wraps", in: "nopqrstuvwxyzNOPQRSTUVWXYZ", want: "abcdefghijklmABCDEFGHIJKLM"},
		{name: "digits and punctuation", in: "123 .,!?", want: "123 .,!?"},
		{name: "non ascii letters pass through", in: "café ß", want: "pnsé ß"},
		{name: "invalid utf8 kept", in: "ab\xffcd", want: "no\xffpq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rot13(tt.in))
			assert.Equal(t, tt.in, Rot13(tt.want))
		})
	}
}

func TestRot13Table(t *testing.T) {
	require.Len(t, rot13Table, 52)
	for from, to := range rot13Table {
		assert.NotEqual(t, from, to)
		assert.Equal(t, from, rot13Table[to], "table must be an involution at %q", from)
	}
}

func TestRot13Involution(t *testing.T) {
	inputs := []string{
		lowerAlphabet,
		upperAlphabet,
		"The quick brown fox jumps over the lazy dog.",
		"\t\nmixed 42 ÅÄÖ",
		"ab\xffcd",
		"\xc3(Zz\x80",
	}
	for _, in := range inputs {
		out := Rot13(in)
		assert.Equal(t, len(in), len(out))
		assert.Equal(t, in, Rot13(out))
	}
}
