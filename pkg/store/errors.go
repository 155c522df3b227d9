package store

import "errors"

// ErrEmptyResource is returned by adapter constructors given no resource name.
var ErrEmptyResource = errors.New("store: empty resource name")
