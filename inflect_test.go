package wordplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThirdPersonSingular(t *testing.T) {
	tests := map[string]string{
		"try":   "tries",
		"brush": "brushes",
		"run":   "runs",
		"go":    "goes",
		"watch": "watches",
		"miss":  "misses",
		"fix":   "fixes",
		"buzz":  "buzzes",
		"play":  "plaies", // rule has no vowel+y exception
		"":      "s",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ThirdPersonSingular(in))
		})
	}
}

func TestPresentParticiple(t *testing.T) {
	tests := map[string]string{
		"lie":   "lying",
		"die":   "dying",
		"move":  "moving",
		"see":   "seing",
		"hug":   "hugging",
		"run":   "running",
		"eat":   "eating", // starts with a vowel
		"box":   "boxxing",
		"walk":  "walking",
		"begin": "begining", // only three letter words double
		"":      "ing",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, PresentParticiple(in))
		})
	}
}

func TestIsCVC(t *testing.T) {
	assert.True(t, isCVC("hug"))
	assert.True(t, isCVC("yes"))
	assert.False(t, isCVC("hugs"))
	assert.False(t, isCVC("ago"))
	assert.False(t, isCVC("too"))
	assert.False(t, isCVC(""))
}
