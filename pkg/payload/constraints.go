package payload

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dmitrymomot/payloadkit/pkg/rule"
	"github.com/dmitrymomot/payloadkit/pkg/validator"
)

// EnforceConstraints returns an extension step that checks the declared Type and
// AllowedValues of every field present in the payload. The default pipeline never
// runs it; add it explicitly to opt in:
//
//	teams := rule.Rule{Fields: map[string]rule.FieldSpec{
//		"name":      {Required: true, Type: rule.TypeString},
//		"team_type": {Required: true, AllowedValues: []any{"tech", "business"}},
//	}}
//	_, err := payload.Validate(body, teams, payload.EnforceConstraints(teams))
//	// {"name":"Eng","team_type":"pirates"} fails with
//	// "team_type: must be one of: tech, business"
//
// Fields are checked in sorted order, the type before the allowed values. The
// first failure is reported as KindCustom with a "field: message" detail.
// Numbers compare by value, so a declared 1 matches a payload 1.0.
func EnforceConstraints(r rule.Rule) Step {
	return func(p Payload, _ rule.Rule) error {
		var rules []validator.Rule
		for _, name := range r.FieldNames() {
			v, ok := p[name]
			if !ok {
				continue
			}
			spec := r.Fields[name]
			rules = append(rules, typeRule(name, v, spec.Type))
			if len(spec.AllowedValues) > 0 {
				allowed := make([]any, 0, len(spec.AllowedValues))
				for _, a := range spec.AllowedValues {
					allowed = append(allowed, comparableValue(a))
				}
				rules = append(rules, validator.InList(name, comparableValue(v), allowed))
			}
		}

		if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); len(verrs) > 0 {
			return Custom("%s: %s", verrs[0].Field, verrs[0].Message)
		}
		return nil
	}
}

func typeRule(field string, v any, t rule.TypeTag) validator.Rule {
	return validator.Rule{
		Check: func() bool { return matchesType(v, t) },
		Error: validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", t),
		},
	}
}

func matchesType(v any, t rule.TypeTag) bool {
	switch t {
	case "", rule.TypeAny:
		return true
	case rule.TypeString:
		_, ok := v.(string)
		return ok
	case rule.TypeBoolean:
		_, ok := v.(bool)
		return ok
	case rule.TypeList:
		_, ok := v.([]any)
		return ok
	case rule.TypeObject:
		_, ok := v.(map[string]any)
		return ok
	case rule.TypeNumber:
		_, ok := toFloat(v)
		return ok
	case rule.TypeInteger:
		f, ok := toFloat(v)
		return ok && f == math.Trunc(f)
	}
	return false
}

// unmatched stands in for composite values, which never equal a declared value.
type unmatched struct{}

// comparableValue maps numbers to float64 so that values compare by value,
// and composite values to unmatched so that comparing them cannot panic.
func comparableValue(v any) any {
	if f, ok := toFloat(v); ok {
		return f
	}
	switch v.(type) {
	case string, bool, nil:
		return v
	}
	return unmatched{}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
