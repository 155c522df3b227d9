// Package payload runs the validation pipeline for inbound JSON bodies.
//
// Validate executes a fixed sequence of steps against a raw request body and
// a rule.Rule:
//
//  1. parse: the body must be UTF-8 encoded and hold exactly one JSON object;
//  2. mandatory: every field declared Required must be present;
//  3. allowed: every key in the body must be declared in the rule;
//  4. extension steps supplied by the caller, in the order given.
//
// The first failing step ends the run and its *Error is returned. Errors from
// different steps are never merged, so a client always receives exactly one
// message. Callers that want to report missing and unknown fields together
// can call MissingFields and UnknownFields directly.
//
// Validate keeps no state between calls and never mutates the rule, so a
// single rule may be validated against from any number of goroutines.
//
// # Usage
//
//	data, err := payload.Validate(body, teamsRule, payload.EnforceConstraints(teamsRule))
//	if err != nil {
//		var perr *payload.Error
//		if errors.As(err, &perr) {
//			// perr.Mapping() == map[string]string{"error": "..."}
//		}
//		return
//	}
//
// # Error Handling
//
// Every error returned by Validate is a *Error. Its Kind identifies the step
// that failed and errors.Is matches it against ErrMalformedJSON,
// ErrMissingFields, ErrUnknownFields and ErrCustom.
package payload
