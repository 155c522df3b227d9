package redisstore

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrFailedToEncodeDocument       = errors.New("failed to encode document")
	ErrFailedToWriteDocument        = errors.New("failed to write document")
	ErrDuplicateDocument            = errors.New("document already exists")
)
