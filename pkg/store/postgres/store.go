package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

const insertDocument = `INSERT INTO payload_objects (id, resource, data, created_at)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

// Querier is the subset of *pgxpool.Pool used by Store.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store inserts documents of one resource.
type Store struct {
	db       Querier
	resource string
}

// New returns a Store for resource.
func New(db Querier, resource string) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	return &Store{db: db, resource: resource}, nil
}

// Create inserts data and returns the saved document.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	doc := store.NewDocument(s.resource, data)

	body, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, errors.Join(ErrFailedToEncodeDocument, err)
	}

	var createdAt time.Time
	if err := s.db.QueryRow(ctx, insertDocument, doc.ID, doc.Resource, body, doc.CreatedAt).Scan(&createdAt); err != nil {
		if IsDuplicateKeyError(err) {
			return nil, errors.Join(ErrDuplicateDocument, fmt.Errorf("%s/%s: %w", s.resource, doc.ID, err))
		}
		return nil, errors.Join(ErrFailedToInsertDocument, err)
	}

	doc.CreatedAt = createdAt.UTC()
	doc.State = store.StateSaved
	return doc, nil
}
