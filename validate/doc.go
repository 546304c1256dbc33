// Package validate checks text request values with ozzo-validation rules
// that also document themselves in an OpenAPI 3 schema.
//
// Bind rules to fields by implementing [Ruler]:
//
//	func (r *RotRequest) Rules() []*validate.FieldRules {
//	    return []*validate.FieldRules{
//	        validate.Field(&r.Text, validate.Required, validate.Length(1, 4096)),
//	    }
//	}
//
// then check a value, or decode and check in one step:
//
//	err := validate.Validate(&req)
//	err = validate.DecodeAndValidate(r.Body, &req)
//
// Besides the generic rules ([Required], [Length], [In], [Each], [By]) the
// package carries text rules backed by the wordplay functions: [Pangram],
// [PalindromePhrase], [KnownWord] and [HasAlphabetic].
package validate
