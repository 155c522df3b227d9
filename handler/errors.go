package handler

import "errors"

var (
	// ErrNotValidated is returned by Validator methods called before IsValid.
	ErrNotValidated = errors.New("payload has not been validated")
	// ErrPayloadInvalid is returned by OnValid for a payload that failed validation.
	ErrPayloadInvalid = errors.New("payload failed validation")
	// ErrPayloadValid is returned by OnInvalid for a payload that passed validation.
	ErrPayloadValid = errors.New("payload passed validation")
	// ErrBodyTooLarge indicates the request body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
	// ErrInvalidResource indicates a Resource that cannot be served.
	ErrInvalidResource = errors.New("invalid resource")
)
