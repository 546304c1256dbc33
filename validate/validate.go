package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks value. A [Ruler] has its field rules applied; slices and
// maps of Ruler structs have every element checked, with errors keyed by
// index or map key. Other values are accepted as is.
func Validate(value any) error {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}
	if r, ok := value.(Ruler); ok {
		return ValidateStruct(value, r.Rules())
	}
	// ozzo passes struct fields by value; retry through a pointer copy.
	if rv.Kind() == reflect.Struct {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if r, ok := ptr.Interface().(Ruler); ok {
			return ValidateStruct(ptr.Interface(), r.Rules())
		}
		return nil
	}

	rv = reflect.Indirect(rv)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		errs := validation.Errors{}
		for i := 0; i < rv.Len(); i++ {
			if err := validateElement(rv.Index(i)); err != nil {
				errs[strconv.Itoa(i)] = err
			}
		}
		return errs.Filter()
	case reflect.Map:
		errs := validation.Errors{}
		for _, key := range rv.MapKeys() {
			if err := validateElement(rv.MapIndex(key)); err != nil {
				errs[fmt.Sprintf("%v", key.Interface())] = err
			}
		}
		return errs.Filter()
	}
	return nil
}

func validateElement(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct, reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Array, reflect.Map:
		if v.CanAddr() && v.Kind() == reflect.Struct {
			return Validate(v.Addr().Interface())
		}
		return Validate(v.Interface())
	}
	return nil
}

// ValidateStruct checks structPtr against explicit field rules.
// Prefer [Validate] for types implementing [Ruler].
func ValidateStruct(structPtr any, fields []*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(fields)...)
}

// UnmarshalAndValidate decodes JSON from b into dst, normalizes it (see
// [Normalizer]) and validates it.
func UnmarshalAndValidate(b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	normalizeRecursive(dst)
	return Validate(dst)
}

// DecodeAndValidate is like [UnmarshalAndValidate] but streams the JSON
// from r, such as an HTTP request body.
func DecodeAndValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	normalizeRecursive(dst)
	return Validate(dst)
}

// rulerBridge sends ozzo back into Validate so nested Ruler fields and
// collections of them are checked too.
type rulerBridge struct{}

func (rulerBridge) Validate(value any) error {
	if value == nil {
		return nil
	}
	return Validate(value)
}

func convertFieldRules(fields []*FieldRules) []*validation.FieldRules {
	out := make([]*validation.FieldRules, len(fields))
	for i, fr := range fields {
		rules := convertRules(fr.rules...)
		rules = append(rules, rulerBridge{})
		out[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return out
}

func convertRules(rules ...Rule) []validation.Rule {
	out := make([]validation.Rule, len(rules), len(rules)+1)
	for i := range rules {
		out[i] = rules[i]
	}
	return out
}
