// Package validator provides small declarative validation rules.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates every failure
// into a ValidationErrors value, which satisfies the error interface. The
// package keeps no state, so rules may be built and applied from any
// goroutine.
//
// # Usage
//
//	err := validator.Apply(
//		validator.InList("team_type", teamType, []string{"tech", "business"}),
//		validator.Rule{
//			Check: func() bool { return name != "" },
//			Error: validator.ValidationError{Field: "name", Message: "must not be empty"},
//		},
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		first := verrs[0] // failures keep the order of the rules
//		_ = first
//	}
//
// # Error Handling
//
// Apply returns nil when every rule passes. Use ExtractValidationErrors or
// IsValidationError to inspect a returned error; it may also be matched with
// errors.As against ValidationErrors.
package validator
