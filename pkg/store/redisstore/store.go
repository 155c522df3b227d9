package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

// Client is the subset of redis.UniversalClient used by Store.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Store writes documents of one resource under "<prefix>:<resource>:<id>".
type Store struct {
	client   Client
	prefix   string
	resource string
	ttl      time.Duration
}

// New returns a Store for resource. Zero ttl keeps documents forever.
func New(client Client, resource, prefix string, ttl time.Duration) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	return &Store{client: client, prefix: prefix, resource: resource, ttl: ttl}, nil
}

// Key returns the key a document id is stored under.
func (s *Store) Key(id string) string {
	if s.prefix == "" {
		return s.resource + ":" + id
	}
	return s.prefix + ":" + s.resource + ":" + id
}

// Create writes data as a new document.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	doc := store.NewDocument(s.resource, data)

	body, err := json.Marshal(doc.Record())
	if err != nil {
		return nil, errors.Join(ErrFailedToEncodeDocument, err)
	}

	ok, err := s.client.SetNX(ctx, s.Key(doc.ID), body, s.ttl).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToWriteDocument, err)
	}
	if !ok {
		return nil, errors.Join(ErrDuplicateDocument, fmt.Errorf("key %s", s.Key(doc.ID)))
	}

	doc.State = store.StateSaved
	return doc, nil
}
