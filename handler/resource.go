package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/payloadkit/pkg/payload"
	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

// PersistenceAdapter creates a domain object from a validated payload.
// The returned object is handed to the response formatter as is.
type PersistenceAdapter interface {
	Create(ctx context.Context, data map[string]any) (any, error)
}

// AdapterFunc adapts a plain function to PersistenceAdapter.
type AdapterFunc func(ctx context.Context, data map[string]any) (any, error)

// Create implements PersistenceAdapter.
func (f AdapterFunc) Create(ctx context.Context, data map[string]any) (any, error) {
	return f(ctx, data)
}

// Resource describes one create endpoint.
type Resource struct {
	Name  string
	Rule  rule.Rule
	Steps []payload.Step
	Store PersistenceAdapter
}

// Validate reports whether the resource can be served.
func (res Resource) Validate() error {
	if res.Name == "" {
		return errors.Join(ErrInvalidResource, errors.New("empty name"))
	}
	if res.Store == nil {
		return errors.Join(ErrInvalidResource, fmt.Errorf("resource %q has no store", res.Name))
	}
	if err := res.Rule.Validate(); err != nil {
		return errors.Join(ErrInvalidResource, fmt.Errorf("resource %q: %w", res.Name, err))
	}
	return nil
}
