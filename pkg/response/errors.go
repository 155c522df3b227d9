package response

import "errors"

var (
	// ErrInvalidInputShape is returned when Format receives something other than a slice
	// or a slice element that cannot be turned into a field map.
	ErrInvalidInputShape = errors.New("data must be a list of objects.")
)
