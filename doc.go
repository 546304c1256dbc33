// Package wordplay provides small text transformations: a ROT13 cipher,
// English verb inflection, pangram and palindrome checks, character
// frequency counting, whitespace normalization and a fixed-lexicon
// translator.
//
// Every function is pure: inputs are never modified and the lookup tables
// behind [Rot13] and [Translate] are read-only after package init, so all of
// them are safe for concurrent use.
//
//	wordplay.Rot13("Caesar salad!")          // "Pnrfne fnynq!"
//	wordplay.ThirdPersonSingular("brush")    // "brushes"
//	wordplay.PresentParticiple("hug")        // "hugging"
//	wordplay.Correct("cool.Indeed!  Yes")    // "cool. Indeed! Yes"
//
// Sub-packages:
//   - validate – ozzo-validation backed rules with OpenAPI schema descriptions
//   - is – govalidator backed string format rules
//   - transform – apply the transformations to every string field of a struct
//   - openapi – OpenAPI document helpers for the HTTP API
package wordplay
