package searchstore

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created.
	ErrConnectionFailed = errors.New("opensearch connection failed")
	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")

	ErrFailedToEncodeDocument = errors.New("failed to encode document")
	ErrFailedToIndexDocument  = errors.New("failed to index document")
	ErrDuplicateDocument      = errors.New("document already exists")
)
