package validate

import (
	"strings"
	"unicode"

	"github.com/Gobd/wordplay"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringRule struct {
	validation.StringRule
	desc string
}

// NewStringRuleWithError returns a string rule failing with err and
// documented by desc.
func NewStringRuleWithError(validator func(string) bool, err validation.Error, desc string) Rule {
	return stringRule{validation.NewStringRuleWithError(validator, err), desc}
}

// NewStringRule returns a string rule using desc as both the error message
// and the schema description.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return NewStringRuleWithError(validator, validation.NewError("validation_"+strings.ReplaceAll(desc, " ", "_"), desc), desc)
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeText(ref, r.desc)
	return nil
}

var (
	errNotPangram    = validation.NewError("validation_pangram", "must contain every letter a to z")
	errNotPalindrome = validation.NewError("validation_palindrome_phrase", "must read the same backwards, ignoring case and non-letters")
	errNoLetters     = validation.NewError("validation_has_alphabetic", "must contain at least one alphabetic character")
)

// Pangram checks that a string uses every letter of the English alphabet.
func Pangram() Rule {
	return NewStringRuleWithError(wordplay.IsPangram, errNotPangram, "Must be a pangram.")
}

// PalindromePhrase checks that a string's letters form a palindrome.
func PalindromePhrase() Rule {
	return NewStringRuleWithError(wordplay.IsPalindromePhrase, errNotPalindrome, "Must be a palindrome phrase.")
}

// HasAlphabetic checks that a string contains at least one letter.
func HasAlphabetic() Rule {
	return NewStringRuleWithError(func(s string) bool {
		return strings.IndexFunc(s, unicode.IsLetter) >= 0
	}, errNoLetters, "Must contain at least one alphabetic character.")
}

type knownWordRule struct{}

// KnownWord checks that a string is in the translation lexicon. Use it with
// [Each] on a list of words.
func KnownWord() Rule {
	return knownWordRule{}
}

func (knownWordRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	if !wordplay.KnownWord(s) {
		return validation.NewError("validation_known_word", "must be one of "+strings.Join(wordplay.Lexicon(), ", "))
	}
	return nil
}

func (knownWordRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	words := wordplay.Lexicon()
	enum := make([]any, len(words))
	for i, w := range words {
		enum[i] = w
	}
	itemSchema(ref).Enum = enum
	return nil
}
