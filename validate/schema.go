package validate

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// rulesForType returns a fresh *t and its field rules when *t is a Ruler.
func rulesForType(t reflect.Type) (reflect.Value, []*FieldRules) {
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, nil
	}
	inst := reflect.New(t)
	r, ok := inst.Interface().(Ruler)
	if !ok {
		return reflect.Value{}, nil
	}
	return inst.Elem(), r.Rules()
}

// describeFields calls Describe on every rule whose field maps to one of the
// schema's properties.
func describeFields(structVal reflect.Value, fields []*FieldRules, schema *openapi3.Schema) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fr.tag = fieldKey(*sf)
		prop, ok := schema.Properties[fr.tag]
		if !ok {
			continue
		}
		for _, rule := range fr.rules {
			if err := rule.Describe(fr.tag, schema, prop); err != nil {
				return err
			}
		}
	}
	return nil
}

func schemaDoc(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	structVal, fields := rulesForType(t)
	if len(fields) == 0 {
		return nil
	}
	return describeFields(structVal, fields, schema)
}

// NewSchemaRefForValue generates an OpenAPI schema for value with the rules
// of every [Ruler] type it contains described on the matching properties.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}
