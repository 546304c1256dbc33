package transform

import (
	"reflect"
	"strings"

	"github.com/Gobd/wordplay"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructTrimSpace(v any) {
	stringFunc(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	stringFunc(v, strings.ToLower)
}

// StructRot13 ciphers every string field with [wordplay.Rot13]. Running it
// twice restores the struct.
func StructRot13(v any) {
	stringFunc(v, wordplay.Rot13)
}

// StructCorrect runs [wordplay.Correct] on every string field.
func StructCorrect(v any) {
	stringFunc(v, wordplay.Correct)
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	walkStruct(v, f)
}

func walkStruct(v reflect.Value, f func(string) string) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.Slice, reflect.Array:
			for j := 0; j < field.Len(); j++ {
				apply(field.Index(j), f)
			}
		case reflect.Map:
			walkMap(field, f)
		case reflect.Interface:
			// Skip interface fields; the dynamic value is not settable.
		default:
			apply(field, f)
		}
	}
}

// apply rewrites a settable string, struct or pointer value in place.
func apply(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(f(v.String()))
	case reflect.Struct:
		walkStruct(v, f)
	case reflect.Ptr:
		if !v.IsNil() {
			apply(v.Elem(), f)
		}
	}
}

func walkMap(m reflect.Value, f func(string) string) {
	for _, key := range m.MapKeys() {
		val := m.MapIndex(key)
		switch val.Kind() {
		case reflect.String:
			m.SetMapIndex(key, reflect.ValueOf(f(val.String())).Convert(val.Type()))
		case reflect.Struct:
			// Map values aren't addressable; copy, rewrite, put back.
			cp := reflect.New(val.Type()).Elem()
			cp.Set(val)
			walkStruct(cp, f)
			m.SetMapIndex(key, cp)
		case reflect.Ptr:
			if !val.IsNil() {
				apply(val.Elem(), f)
			}
		}
	}
}
