package validate

import "reflect"

// Normalizer is implemented by types that clean themselves up after
// decoding. [UnmarshalAndValidate] and [DecodeAndValidate] call Normalize on
// the top level value first and then, depth first, on every nested struct,
// pointer, slice element and map value that also implements it.
type Normalizer interface {
	Normalize()
}

func normalizeRecursive(a any) {
	if a == nil {
		return
	}
	callNormalize(a)
	rv := reflect.ValueOf(a)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		walkNormalize(rv)
	}
}

func callNormalize(v any) {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}
}

// normalizeValue handles one addressable or pointer value found while
// walking a struct.
func normalizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.CanAddr() {
			callNormalize(v.Addr().Interface())
		}
		walkNormalize(v)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		callNormalize(v.Interface())
		if v.Elem().Kind() == reflect.Struct {
			walkNormalize(v.Elem())
		}
	}
}

func walkNormalize(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		field := rv.Field(i)
		switch field.Kind() {
		case reflect.Struct, reflect.Ptr:
			normalizeValue(field)
		case reflect.Slice:
			for j := 0; j < field.Len(); j++ {
				normalizeValue(field.Index(j))
			}
		case reflect.Map:
			for _, key := range field.MapKeys() {
				val := field.MapIndex(key)
				if val.Kind() != reflect.Struct {
					continue
				}
				// Map values aren't addressable; copy, normalize, put back.
				cp := reflect.New(val.Type())
				cp.Elem().Set(val)
				callNormalize(cp.Interface())
				walkNormalize(cp.Elem())
				field.SetMapIndex(key, cp.Elem())
			}
		}
	}
}
