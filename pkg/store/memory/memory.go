// Package memory is an in-process persistence adapter.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

// Store keeps documents of one resource in a map. Safe for concurrent use.
type Store struct {
	resource string

	mu    sync.RWMutex
	docs  map[string]*store.Document
	order []string
}

// New returns an empty Store for resource.
func New(resource string) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	return &Store{resource: resource, docs: make(map[string]*store.Document)}, nil
}

// Create stores data as a new document and returns a copy of it.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := store.NewDocument(s.resource, data)
	doc.State = store.StateSaved

	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	s.mu.Unlock()

	return clone(doc), nil
}

// Get returns a copy of the document with id.
func (s *Store) Get(id string) (*store.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	return clone(doc), true
}

// List returns copies of all documents in creation order.
func (s *Store) List() []*store.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*store.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.docs[id]))
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// IDs returns the stored ids, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.docs))
}

// Healthcheck always succeeds.
func (s *Store) Healthcheck() store.Healthcheck {
	return func(context.Context) error { return nil }
}

func clone(doc *store.Document) *store.Document {
	cp := *doc
	cp.Data = maps.Clone(doc.Data)
	return &cp
}
