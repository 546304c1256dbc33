// Package is provides string format rules for the validate package, backed
// by govalidator.
package is

import (
	"github.com/Gobd/wordplay/validate"
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Alpha checks that a string holds only ASCII letters.
	Alpha = validate.NewStringRuleWithError(govalidator.IsAlpha,
		validation.NewError("validation_is_alpha", "must contain English letters only"),
		"English letters only.")

	// UTFLetter checks that a string holds only Unicode letters.
	UTFLetter = validate.NewStringRuleWithError(govalidator.IsUTFLetter,
		validation.NewError("validation_is_utf_letter", "must contain unicode letter characters only"),
		"Letters only.")

	// LowerCase checks that a string has no upper case characters.
	LowerCase = validate.NewStringRuleWithError(govalidator.IsLowerCase,
		validation.NewError("validation_is_lower_case", "must be in lower case"),
		"Lower case.")

	// ASCII checks that a string holds only ASCII characters.
	ASCII = validate.NewStringRuleWithError(govalidator.IsASCII,
		validation.NewError("validation_is_ascii", "must contain ASCII characters only"),
		"ASCII only.")

	// PrintableASCII checks that a string holds only printable ASCII
	// characters, which rules out tabs and newlines.
	PrintableASCII = validate.NewStringRuleWithError(govalidator.IsPrintableASCII,
		validation.NewError("validation_is_printable_ascii", "must contain printable ASCII characters only"),
		"Printable ASCII only.")
)

// Word checks that a string is a single lower case English word, the input
// the inflection functions expect.
var Word = validate.NewStringRuleWithError(func(s string) bool {
	return govalidator.IsAlpha(s) && govalidator.IsLowerCase(s)
}, validation.NewError("validation_is_word", "must be a single lower case English word"), "A single lower case English word.")
