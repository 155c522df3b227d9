package s3store

import "errors"

var (
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrFailedToLoadConfig     = errors.New("failed to load AWS config")
	ErrFailedToEncodeDocument = errors.New("failed to encode document")
	ErrFailedToPutDocument    = errors.New("failed to put document")
	ErrHealthcheckFailed      = errors.New("s3 healthcheck failed")

	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrDuplicateDocument  = errors.New("document already exists")
)
