package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

// Store writes documents of one resource to "<prefix>/<resource>/<id>.json".
type Store struct {
	client   Client
	bucket   string
	prefix   string
	resource string
}

// New returns a Store for resource.
func New(client Client, bucket, prefix, resource string) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	if bucket == "" {
		return nil, ErrInvalidConfig
	}
	return &Store{client: client, bucket: bucket, prefix: prefix, resource: resource}, nil
}

// Key returns the object key for a document id.
func (s *Store) Key(id string) string {
	return path.Join(s.prefix, s.resource, id+".json")
}

// Create uploads data as a new document. The upload is conditional, so an
// existing key is never overwritten.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	doc := store.NewDocument(s.resource, data)

	body, err := json.Marshal(doc.Record())
	if err != nil {
		return nil, errors.Join(ErrFailedToEncodeDocument, err)
	}

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.Key(doc.ID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		IfNoneMatch: aws.String("*"),
		Metadata:    map[string]string{"resource": s.resource},
	}); err != nil {
		return nil, errors.Join(ErrFailedToPutDocument, classify(err, "put object"))
	}

	doc.State = store.StateSaved
	return doc, nil
}
