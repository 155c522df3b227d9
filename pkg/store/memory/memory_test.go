package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/store"
	"github.com/dmitrymomot/payloadkit/pkg/store/memory"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := memory.New("")
	assert.ErrorIs(t, err, store.ErrEmptyResource)
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	s, err := memory.New("teams")
	require.NoError(t, err)

	data := map[string]any{"name": "Eng"}
	obj, err := s.Create(context.Background(), data)
	require.NoError(t, err)

	doc, ok := obj.(*store.Document)
	require.True(t, ok)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "teams", doc.Resource)
	assert.Equal(t, store.StateSaved, doc.State)
	assert.Equal(t, data, doc.Data)

	// returned copies do not alias stored state
	doc.Data["name"] = "Ops"
	data["name"] = "Ops"
	got, ok := s.Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, "Eng", got.Data["name"])

	_, ok = s.Get("missing")
	assert.False(t, ok)
	assert.NoError(t, s.Healthcheck()(context.Background()))
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s, err := memory.New("teams")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Create(ctx, map[string]any{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	t.Parallel()

	s, err := memory.New("teams")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(context.Background(), map[string]any{"name": "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	assert.Len(t, s.IDs(), 50)

	list := s.List()
	require.Len(t, list, 50)
	for _, doc := range list {
		assert.Equal(t, "x", doc.Data["name"])
	}
}
