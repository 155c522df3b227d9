package validator

import "errors"

// ErrValidationFailed is the message prefix of every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
