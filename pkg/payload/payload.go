package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"unicode/utf8"

	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

// Payload is a decoded request body. Numbers are kept as json.Number.
type Payload map[string]any

// Has reports whether key is present, including keys holding JSON null.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Map returns a shallow copy as a plain map.
func (p Payload) Map() map[string]any {
	return maps.Clone(map[string]any(p))
}

// Step is a caller-supplied check run after the built-in steps.
// A nil return passes. A returned *Error is reported as is; any other
// error is reported as KindCustom with its text as the detail.
type Step func(p Payload, r rule.Rule) error

// Validate runs the pipeline and returns the parsed payload on success.
// Any returned error is a *Error.
//
// Example:
//
//	teams := rule.Rule{
//		Fields: map[string]rule.FieldSpec{
//			"name":        {Required: true},
//			"description": {Required: true},
//			"members":     {},
//		},
//	}
//
//	p, err := payload.Validate([]byte(`{"name":"Eng","description":"core"}`), teams)
//	// p["name"] == "Eng", err == nil
//
//	_, err = payload.Validate([]byte(`{"name":"Eng"}`), teams)
//	// err.Error() == "mandatory params missing. missing parameters are [description]"
//
//	_, err = payload.Validate([]byte(`{"name":"Eng","description":"core","extra":1}`), teams)
//	// errors.Is(err, payload.ErrUnknownFields) == true
//
// Extension steps run only after the built-in steps pass:
//
//	unique := func(p payload.Payload, _ rule.Rule) error {
//		if taken(p["name"]) {
//			return payload.Custom("team %v already exists", p["name"])
//		}
//		return nil
//	}
//	_, err = payload.Validate(body, teams, unique)
func Validate(raw []byte, r rule.Rule, steps ...Step) (Payload, error) {
	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if missing := MissingFields(p, r); len(missing) > 0 {
		return nil, fieldsError(KindMissingFields, missing)
	}
	if unknown := UnknownFields(p, r); len(unknown) > 0 {
		return nil, fieldsError(KindUnknownFields, unknown)
	}
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(p, r); err != nil {
			return nil, asError(err)
		}
	}
	return p, nil
}

// Parse decodes raw as a single UTF-8 JSON object.
func Parse(raw []byte) (Payload, error) {
	if len(bytes.TrimSpace(raw)) == 0 || !utf8.Valid(raw) {
		return nil, &Error{Kind: KindMalformedJSON}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &Error{Kind: KindMalformedJSON}
	}

	// Reject anything after the first value.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &Error{Kind: KindMalformedJSON}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &Error{Kind: KindMalformedJSON}
	}
	return Payload(obj), nil
}

// MissingFields returns every required field of r absent from p, sorted.
func MissingFields(p Payload, r rule.Rule) []string {
	var missing []string
	for _, name := range r.Required() {
		if !p.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// UnknownFields returns every key of p not declared in r, sorted.
func UnknownFields(p Payload, r rule.Rule) []string {
	var unknown []string
	for key := range p {
		if !r.Allowed(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return fieldsError(KindUnknownFields, unknown).Fields
}

func asError(err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return &Error{Kind: KindCustom, Detail: err.Error()}
}
