package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required checks that a value is not empty.
var Required = requiredRule{validation.Required}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	return nil
}

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length checks that a string's rune length, or a slice's length, is within
// [lo, hi]. Empty values pass; combine with [Required] to reject them.
func Length(lo, hi int) Rule {
	return &lengthRule{validation.RuneLength(lo, hi), lo, hi}
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	lo, hi := uint64(r.min), uint64(r.max)
	if ref.Value.Type.Is(openapi3.TypeArray) {
		ref.Value.MinItems = lo
		ref.Value.MaxItems = &hi
		return nil
	}
	ref.Value.MinLength = lo
	ref.Value.MaxLength = &hi
	return nil
}

// inRule checks that a value is one of a fixed set.
type inRule struct {
	validation.InRule
	values []any
}

// In checks that a value is one of values.
func In(values ...any) Rule {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return &inRule{
		validation.In(values...).Error("must be one of " + strings.Join(want, ", ")),
		values,
	}
}

func (r *inRule) Validate(value any) error {
	if err := r.InRule.Validate(value); err != nil {
		return fmt.Errorf("%s got '%v'", err, value)
	}
	return nil
}

func (r *inRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	itemSchema(ref).Enum = r.values
	return nil
}

type eachRule struct {
	validation.EachRule
	rules []Rule
}

// Each applies rules to every element of a slice, array or map.
func Each(rules ...Rule) Rule {
	return &eachRule{validation.Each(convertRules(rules...)...), rules}
}

func (r *eachRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, rule := range r.rules {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

type inlineRule struct {
	validation.Rule
	desc string
}

// By wraps f into a Rule documented by desc.
func By(f RuleFunc, desc string) Rule {
	return &inlineRule{validation.By(validation.RuleFunc(f)), desc}
}

func (r *inlineRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeText(ref, r.desc)
	return nil
}

type defaultRule struct {
	value any
}

// Default is a documentation only rule that sets the schema default. The
// handler is still responsible for applying it.
func Default(value any) Rule {
	return defaultRule{value}
}

func (defaultRule) Validate(any) error { return nil }

func (r defaultRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.value
	return nil
}

type describeRule struct {
	desc    string
	example any
}

// Describe is a documentation only rule that appends desc to the schema
// description.
func Describe(desc string) Rule {
	return &describeRule{desc: desc}
}

// Example is a documentation only rule that sets the schema example.
func Example(ex any) Rule {
	return &describeRule{example: ex}
}

func (r *describeRule) Validate(any) error { return nil }

func (r *describeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	describeText(ref, r.desc)
	if r.example != nil {
		ref.Value.Example = r.example
	}
	return nil
}
