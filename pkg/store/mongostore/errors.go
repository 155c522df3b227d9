package mongostore

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrFailedToInsertDocument = errors.New("failed to insert document")
	ErrDuplicateDocument      = errors.New("document already exists")
)
