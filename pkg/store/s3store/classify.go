package s3store

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// classify maps S3 API errors to package sentinels, keeping the original
// error in the chain.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}

	var nsb *types.NoSuchBucket
	var nf *types.NotFound
	if errors.As(err, &nsb) || errors.As(err, &nf) {
		return errors.Join(ErrBucketNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden":
			return errors.Join(ErrAccessDenied, err)
		case "SlowDown", "ServiceUnavailable":
			return errors.Join(ErrServiceUnavailable, err)
		case "PreconditionFailed", "ConditionalRequestConflict":
			return errors.Join(ErrDuplicateDocument, err)
		case "NoSuchBucket", "NotFound":
			return errors.Join(ErrBucketNotFound, err)
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", op, apiErr.ErrorCode(), err)
		}
	}
	return err
}
