package validate

import (
	"reflect"
	"strings"
)

// MissingRules returns the json names of exported fields of a Ruler that
// have no FieldRules entry, so tests can catch fields added without rules.
// Fields tagged json:"-" or validate:"-" and the names in exclude are
// skipped. Values that are not a Ruler return nil.
//
//	assert.Empty(t, validate.MissingRules(&TextRequest{}))
func MissingRules(structPtr any, exclude ...string) []string {
	r, ok := structPtr.(Ruler)
	if !ok {
		return nil
	}
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))

	covered := map[string]bool{}
	for _, fr := range r.Rules() {
		if sf := findStructField(structVal, reflect.ValueOf(fr.fieldPtr)); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}
	excluded := map[string]bool{}
	for _, e := range exclude {
		excluded[e] = true
	}

	var missing []string
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("validate") == "-" {
			continue
		}
		if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" {
			continue
		}
		key := fieldKey(sf)
		if covered[key] || excluded[key] || excluded[sf.Name] {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}
