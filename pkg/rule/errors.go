package rule

import "errors"

var (
	// ErrUnresolvedAccessor is returned when an auto-populate accessor key is not provided by the context.
	ErrUnresolvedAccessor = errors.New("auto-populate accessor not found in context")

	// ErrInvalidRule is returned when a rule declaration is inconsistent.
	ErrInvalidRule = errors.New("invalid validation rule")

	// ErrUnknownResource is returned by Registry.Get for names that were never registered.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrDuplicateResource is returned when the same resource name is registered twice.
	ErrDuplicateResource = errors.New("resource already registered")

	// ErrFailedToLoadRules is returned when a rules file cannot be read or parsed.
	ErrFailedToLoadRules = errors.New("failed to load rules")
)
