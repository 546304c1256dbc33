package validate

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// RuleFunc validates a value and returns an error if it is invalid.
	RuleFunc func(value any) error

	// Rule is implemented by every rule in this package. Validate checks a
	// value; Describe records the constraint on the OpenAPI schema of the
	// field named name.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Ruler is implemented by struct pointers that bind rules to their fields.
	Ruler interface {
		Rules() []*FieldRules
	}

	// FieldRules binds a struct field pointer to its rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}
)

// ValidationErrors maps field names to their errors. It is the
// ozzo-validation error map, so it renders as "field: message; ...".
type ValidationErrors = validation.Errors

// describeText appends desc to the schema description, separated by a space.
func describeText(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && ref.Value.Description[len(ref.Value.Description)-1] != ' ' {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// itemSchema returns the element schema for array fields so enum style
// constraints land on the items rather than the array.
func itemSchema(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref.Value.Items != nil && ref.Value.Items.Value != nil {
		return ref.Value.Items.Value
	}
	return ref.Value
}
