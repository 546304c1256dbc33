package wordplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	got, err := Translate([]string{"merry", "christmas", "and", "happy", "new", "year"})
	require.NoError(t, err)
	assert.Equal(t, []string{"god", "jul", "och", "gott", "nytt", "år"}, got)

	got, err = Translate(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslateUnknownWord(t *testing.T) {
	got, err := Translate([]string{"merry", "easter"})
	require.ErrorIs(t, err, ErrUnknownWord)
	assert.Nil(t, got)
	assert.EqualError(t, err, `unknown word: "easter"`)

	_, err = TranslateWord("Merry")
	require.ErrorIs(t, err, ErrUnknownWord)
}

func TestLexicon(t *testing.T) {
	assert.Equal(t, []string{"and", "christmas", "happy", "merry", "new", "year"}, Lexicon())
	assert.True(t, KnownWord("year"))
	assert.False(t, KnownWord("month"))
}
