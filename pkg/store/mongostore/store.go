package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

// Collection is the subset of *mongo.Collection used by Store.
type Collection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

// Store inserts documents of one resource into a collection.
type Store struct {
	coll     Collection
	resource string
}

// New returns a Store writing to coll.
func New(coll Collection, resource string) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	return &Store{coll: coll, resource: resource}, nil
}

// NewFromDatabase returns a Store writing to the collection named after resource.
func NewFromDatabase(db *mongo.Database, resource string) (*Store, error) {
	return New(db.Collection(resource), resource)
}

// Create inserts data as a new document.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	doc := store.NewDocument(s.resource, data)

	if _, err := s.coll.InsertOne(ctx, bson.M{
		"_id":        doc.ID,
		"resource":   doc.Resource,
		"data":       doc.Data,
		"created_at": doc.CreatedAt,
	}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Join(ErrDuplicateDocument, err)
		}
		return nil, errors.Join(ErrFailedToInsertDocument, err)
	}

	doc.State = store.StateSaved
	return doc, nil
}
