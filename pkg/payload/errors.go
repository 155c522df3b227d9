package payload

import (
	"fmt"
	"slices"
)

// Kind identifies the pipeline step that rejected a payload.
type Kind int

const (
	KindMalformedJSON Kind = iota + 1
	KindMissingFields
	KindUnknownFields
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindMalformedJSON:
		return "malformed_json"
	case KindMissingFields:
		return "missing_mandatory_fields"
	case KindUnknownFields:
		return "unknown_fields"
	case KindCustom:
		return "custom_validation_failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrMalformedJSON = &Error{Kind: KindMalformedJSON}
	ErrMissingFields = &Error{Kind: KindMissingFields}
	ErrUnknownFields = &Error{Kind: KindUnknownFields}
	ErrCustom        = &Error{Kind: KindCustom}
)

// Error is the single result of a failed validation run.
type Error struct {
	Kind   Kind
	Fields []string // sorted; set for KindMissingFields and KindUnknownFields
	Detail string   // set for KindCustom
}

// Error returns the client-facing message.
func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedJSON:
		return "provide a valid json."
	case KindMissingFields:
		return fmt.Sprintf("mandatory params missing. missing parameters are %v", e.Fields)
	case KindUnknownFields:
		return fmt.Sprintf("invalid params found in request body. invalid parameters are %v", e.Fields)
	case KindCustom:
		if e.Detail == "" {
			return "validation failed"
		}
		return e.Detail
	default:
		return "validation failed"
	}
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Mapping returns the single-entry body sent to clients.
func (e *Error) Mapping() map[string]string {
	return map[string]string{"error": e.Error()}
}

func fieldsError(kind Kind, fields []string) *Error {
	fields = slices.Clone(fields)
	slices.Sort(fields)
	return &Error{Kind: kind, Fields: fields}
}

// Custom builds a KindCustom error for extension steps.
func Custom(format string, args ...any) *Error {
	return &Error{Kind: KindCustom, Detail: fmt.Sprintf(format, args...)}
}
