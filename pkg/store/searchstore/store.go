package searchstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/payloadkit/pkg/store"
)

// Store indexes documents of one resource. The document id is the
// OpenSearch _id, and writes use op_type=create.
type Store struct {
	transport opensearchapi.Transport
	index     string
	resource  string
	refresh   string
}

// New returns a Store writing to index "<prefix><resource>".
// transport is usually an *opensearch.Client.
func New(transport opensearchapi.Transport, resource, prefix, refresh string) (*Store, error) {
	if resource == "" {
		return nil, store.ErrEmptyResource
	}
	return &Store{transport: transport, index: prefix + resource, resource: resource, refresh: refresh}, nil
}

// Index returns the index name.
func (s *Store) Index() string {
	return s.index
}

// Create indexes data as a new document.
func (s *Store) Create(ctx context.Context, data map[string]any) (any, error) {
	doc := store.NewDocument(s.resource, data)

	body, err := json.Marshal(doc.Record())
	if err != nil {
		return nil, errors.Join(ErrFailedToEncodeDocument, err)
	}

	req := opensearchapi.IndexRequest{
		Index:      s.index,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
		OpType:     "create",
		Refresh:    s.refresh,
	}
	res, err := req.Do(ctx, s.transport)
	if err != nil {
		return nil, errors.Join(ErrFailedToIndexDocument, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode == http.StatusConflict {
		return nil, errors.Join(ErrDuplicateDocument, fmt.Errorf("%s/%s", s.index, doc.ID))
	}
	if res.IsError() {
		return nil, errors.Join(ErrFailedToIndexDocument, fmt.Errorf("status %s", res.Status()))
	}

	doc.State = store.StateSaved
	return doc, nil
}
