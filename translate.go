package wordplay

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownWord is returned when a word is not in the translation lexicon.
var ErrUnknownWord = errors.New("unknown word")

// lexicon translates greeting card English into Swedish.
var lexicon = map[string]string{
	"merry":     "god",
	"christmas": "jul",
	"and":       "och",
	"happy":     "gott",
	"new":       "nytt",
	"year":      "år",
}

// TranslateWord returns the Swedish translation of word. Words outside the
// lexicon return an error wrapping [ErrUnknownWord].
func TranslateWord(word string) (string, error) {
	t, ok := lexicon[word]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return t, nil
}

// Translate translates each word in words. It stops at the first word that
// is not in the lexicon and returns no partial result.
func Translate(words []string) ([]string, error) {
	out := make([]string, len(words))
	for i, w := range words {
		t, err := TranslateWord(w)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// KnownWord reports whether word has a translation.
func KnownWord(word string) bool {
	_, ok := lexicon[word]
	return ok
}

// Lexicon returns the words that can be translated, sorted.
func Lexicon() []string {
	words := make([]string, 0, len(lexicon))
	for w := range lexicon {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
