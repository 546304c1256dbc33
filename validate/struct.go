package validate

import (
	"reflect"
	"strings"
)

// Field binds rules to the struct field fieldPtr points at.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// findStructField returns the struct field of structVal whose address is
// fieldPtr, or nil when fieldPtr does not point into structVal.
func findStructField(structVal, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := 0; i < structVal.NumField(); i++ {
		f := structVal.Field(i)
		if !f.CanAddr() || f.Addr().Pointer() != ptr || f.Addr().Type() != fieldPtr.Type() {
			continue
		}
		sf := structVal.Type().Field(i)
		return &sf
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
