package response

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// StateField is the adapter state marker that is never rendered.
const StateField = "_state"

// Meta describes the request an envelope answers.
type Meta struct {
	ResourceURI  string `json:"resource_uri"`
	TotalObjects int    `json:"total_objects"`
}

// Envelope is the success body for every resource.
type Envelope struct {
	Meta    Meta                `json:"meta"`
	Objects []map[string]string `json:"objects"`
}

// Record is implemented by domain objects that expose their own field map.
type Record interface {
	Fields() map[string]any
}

// IsInternalField reports whether name is adapter bookkeeping: the state
// marker or any field that starts with "_" and ends with "_cache".
func IsInternalField(name string) bool {
	if name == StateField {
		return true
	}
	return strings.HasPrefix(name, "_") && strings.HasSuffix(name, "_cache")
}

// Format cleans every object and wraps them in an Envelope.
// objects must be a slice or an array; nil elements are skipped. A single
// object is rejected with ErrInvalidInputShape rather than wrapped.
//
// Every field value is rendered as a string. Internal fields (see
// IsInternalField) and the excluded names are dropped:
//
//	team := map[string]any{
//		"name":              "Eng",
//		"size":              3,
//		"members":           []string{"ann"},
//		"created_at":        time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
//		"_state":            "saved",
//		"_created_by_cache": "u1",
//	}
//
//	env, err := response.Format([]any{team}, "/api/teams", "members")
//	// env.Meta   == Meta{ResourceURI: "/api/teams", TotalObjects: 1}
//	// env.Objects == []map[string]string{{
//	//	"name":       "Eng",
//	//	"size":       "3",
//	//	"created_at": "2025-03-04T05:06:07Z",
//	// }}
//
//	_, err = response.Format(team, "/api/teams")
//	// errors.Is(err, ErrInvalidInputShape) == true
func Format(objects any, requestURI string, excluded ...string) (Envelope, error) {
	env := Envelope{
		Meta:    Meta{ResourceURI: requestURI},
		Objects: []map[string]string{},
	}

	if objects == nil {
		return env, ErrInvalidInputShape
	}
	rv := reflect.ValueOf(objects)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return env, ErrInvalidInputShape
	}

	skip := excludedSet(excluded)
	for i := range rv.Len() {
		fields, ok, err := fieldsOf(rv.Index(i).Interface())
		if err != nil {
			return Envelope{Meta: Meta{ResourceURI: requestURI}, Objects: []map[string]string{}}, err
		}
		if !ok {
			continue
		}
		env.Objects = append(env.Objects, clean(fields, skip))
	}
	env.Meta.TotalObjects = len(env.Objects)
	return env, nil
}

// Clean flattens a single object the same way Format does.
// A nil object yields a nil map.
func Clean(obj any, excluded ...string) (map[string]string, error) {
	fields, ok, err := fieldsOf(obj)
	if err != nil || !ok {
		return nil, err
	}
	return clean(fields, excludedSet(excluded)), nil
}

func excludedSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func clean(fields map[string]any, excluded map[string]struct{}) map[string]string {
	out := make(map[string]string, len(fields))
	for name, v := range fields {
		if _, skip := excluded[name]; skip || IsInternalField(name) {
			continue
		}
		out[name] = Stringify(v)
	}
	return out
}

// fieldsOf returns the visible fields of obj. ok is false for nil objects.
func fieldsOf(obj any) (fields map[string]any, ok bool, err error) {
	switch o := obj.(type) {
	case nil:
		return nil, false, nil
	case map[string]any:
		return o, true, nil
	case map[string]string:
		fields = make(map[string]any, len(o))
		for k, v := range o {
			fields[k] = v
		}
		return fields, true, nil
	case Record:
		if isNilPointer(obj) {
			return nil, false, nil
		}
		return o.Fields(), true, nil
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false, ErrInvalidInputShape
		}
		fields = make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return fields, true, nil
	case reflect.Struct:
		fields = make(map[string]any)
		structFields(rv, fields)
		return fields, true, nil
	}
	return nil, false, ErrInvalidInputShape
}

// structFields collects exported fields under their json names.
// Embedded structs without a json name are flattened.
func structFields(rv reflect.Value, into map[string]any) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && name == "" {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structFields(fv, into)
				continue
			}
		}
		if name == "" {
			name = sf.Name
		}
		into[name] = fv.Interface()
	}
}

// Stringify renders a single field value.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case *time.Time:
		if val == nil {
			return "null"
		}
		return val.Format(time.RFC3339Nano)
	case json.Number:
		return val.String()
	case []byte:
		return string(val)
	case fmt.Stringer:
		if isNilPointer(v) {
			return "null"
		}
		return val.String()
	case error:
		return val.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return Stringify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
