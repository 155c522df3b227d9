package rule

import (
	"fmt"
	"maps"
	"slices"
)

// TypeTag names the JSON type a field is declared to hold.
type TypeTag string

const (
	TypeAny     TypeTag = "any"
	TypeString  TypeTag = "string"
	TypeNumber  TypeTag = "number"
	TypeInteger TypeTag = "integer"
	TypeBoolean TypeTag = "boolean"
	TypeList    TypeTag = "list"
	TypeObject  TypeTag = "object"
)

// Known reports whether t is one of the declared tags. The empty tag is treated as TypeAny.
func (t TypeTag) Known() bool {
	switch t {
	case "", TypeAny, TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeList, TypeObject:
		return true
	}
	return false
}

// FieldSpec is the per-field declaration of a rule.
type FieldSpec struct {
	Required      bool    `yaml:"required"`
	Type          TypeTag `yaml:"type"`
	AllowedValues []any   `yaml:"allowed_values"`
}

// Rule is the declarative description of a resource payload.
// Fields is the single source of truth for both the mandatory and the allowed checks.
type Rule struct {
	Fields       map[string]FieldSpec `yaml:"fields"`
	AutoPopulate map[string]string    `yaml:"auto_populate"`
	Excluded     []string             `yaml:"excluded_fields"`
}

// Required returns the names of all mandatory fields, sorted.
func (r Rule) Required() []string {
	var names []string
	for name, spec := range r.Fields {
		if spec.Required {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Allowed reports whether name is declared in Fields.
func (r Rule) Allowed(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// FieldNames returns every declared field name, sorted.
func (r Rule) FieldNames() []string {
	return slices.Sorted(maps.Keys(r.Fields))
}

// ExcludedFields returns a copy of the caller-declared output exclusions.
func (r Rule) ExcludedFields() []string {
	return slices.Clone(r.Excluded)
}

// Validate checks the declaration itself, not a payload.
func (r Rule) Validate() error {
	for name, spec := range r.Fields {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidRule)
		}
		if !spec.Type.Known() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidRule, name, spec.Type)
		}
	}
	for field, key := range r.AutoPopulate {
		if field == "" || key == "" {
			return fmt.Errorf("%w: auto-populate entries need a field and an accessor key", ErrInvalidRule)
		}
	}
	for _, name := range r.Excluded {
		if name == "" {
			return fmt.Errorf("%w: empty excluded field name", ErrInvalidRule)
		}
	}
	return nil
}

// Populate returns a copy of data with every auto-populate field resolved from ctx.
// Values already present in data under an auto-populate name are overwritten.
// data itself is left untouched.
func (r Rule) Populate(data map[string]any, ctx Context) (map[string]any, error) {
	out := make(map[string]any, len(data)+len(r.AutoPopulate))
	maps.Copy(out, data)
	if len(r.AutoPopulate) == 0 {
		return out, nil
	}

	for _, field := range slices.Sorted(maps.Keys(r.AutoPopulate)) {
		key := r.AutoPopulate[field]
		if ctx == nil {
			return nil, fmt.Errorf("%w: %q (no context)", ErrUnresolvedAccessor, key)
		}
		v, ok := ctx.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedAccessor, key)
		}
		out[field] = v
	}
	return out, nil
}
