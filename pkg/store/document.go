package store

import (
	"context"
	"maps"
	"time"

	"github.com/google/uuid"
)

// Document states.
const (
	StateNew   = "new"
	StateSaved = "saved"
)

// Bookkeeping field names exposed through Fields.
const (
	FieldState         = "_state"
	FieldResourceCache = "_resource_cache"
)

// Document is one persisted payload.
type Document struct {
	ID        string
	Resource  string
	Data      map[string]any
	CreatedAt time.Time
	State     string
}

// NewDocument assigns an id and a creation time to data.
// data is copied.
func NewDocument(resource string, data map[string]any) *Document {
	return &Document{
		ID:        uuid.NewString(),
		Resource:  resource,
		Data:      maps.Clone(data),
		CreatedAt: time.Now().UTC(),
		State:     StateNew,
	}
}

// Fields returns the payload merged with the document metadata.
// id and created_at win over payload keys of the same name.
func (d *Document) Fields() map[string]any {
	out := make(map[string]any, len(d.Data)+4)
	maps.Copy(out, d.Data)
	out["id"] = d.ID
	out["created_at"] = d.CreatedAt
	out[FieldState] = d.State
	out[FieldResourceCache] = d.Resource
	return out
}

// Record is the serialized shape written by the backends that store
// the document as a single JSON value.
type Record struct {
	ID        string         `json:"id"`
	Resource  string         `json:"resource"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

// Record returns the serialized shape of d.
func (d *Document) Record() Record {
	return Record{ID: d.ID, Resource: d.Resource, Data: d.Data, CreatedAt: d.CreatedAt}
}

// Healthcheck reports whether a backend is reachable.
type Healthcheck func(ctx context.Context) error
