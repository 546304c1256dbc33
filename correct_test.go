package wordplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "reference", in: "This is  very funny  and    cool.Indeed!", want: "This is very funny and cool. Indeed!"},
		{name: "tabs and newlines", in: "a\t\tb\n\nc", want: "a b c"},
		{name: "existing space kept", in: "end. Start", want: "end. Start"},
		{name: "trailing period", in: "done.", want: "done."},
		{name: "consecutive periods", in: "wait..what", want: "wait.. what"},
		{name: "every period", in: "a.b.c", want: "a. b. c"},
		{name: "period before punctuation", in: "x.!", want: "x.!"},
		{name: "empty", in: "", want: ""},
		{name: "vertical tabs", in: "a\v\vb", want: "a b"},
		{name: "no-break spaces", in: "a\u00a0\u00a0b", want: "a b"},
		{name: "em space run", in: "a \u2003 b", want: "a b"},
		{name: "next line", in: "a\u0085b", want: "a b"},
		{name: "non ascii letter after period", in: "cool.Été", want: "cool. Été"},
		{name: "digit after period", in: "v.2", want: "v. 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correct(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Correct(got), "must be idempotent")
		})
	}
}
