package postgres_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/store"
	"github.com/dmitrymomot/payloadkit/pkg/store/postgres"
)

type row struct {
	createdAt time.Time
	err       error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*time.Time)) = r.createdAt
	return nil
}

type querier struct {
	sql  string
	args []any
	row  row
}

func (q *querier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := postgres.New(&querier{}, "")
	assert.ErrorIs(t, err, store.ErrEmptyResource)
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	q := &querier{row: row{createdAt: created}}
	s, err := postgres.New(q, "teams")
	require.NoError(t, err)

	obj, err := s.Create(context.Background(), map[string]any{"name": "Eng", "size": json.Number("3")})
	require.NoError(t, err)

	doc, ok := obj.(*store.Document)
	require.True(t, ok)
	assert.Equal(t, store.StateSaved, doc.State)
	assert.Equal(t, created.UTC(), doc.CreatedAt)

	assert.True(t, strings.HasPrefix(q.sql, "INSERT INTO payload_objects"))
	require.Len(t, q.args, 4)
	assert.Equal(t, doc.ID, q.args[0])
	assert.Equal(t, "teams", q.args[1])
	assert.JSONEq(t, `{"name":"Eng","size":3}`, string(q.args[2].([]byte)))
}

func TestStore_CreateErrors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate key", func(t *testing.T) {
		t.Parallel()
		s, err := postgres.New(&querier{row: row{err: &pgconn.PgError{Code: "23505"}}}, "teams")
		require.NoError(t, err)

		_, err = s.Create(context.Background(), map[string]any{})
		assert.ErrorIs(t, err, postgres.ErrDuplicateDocument)
		assert.True(t, postgres.IsDuplicateKeyError(err))
	})

	t.Run("backend failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		s, err := postgres.New(&querier{row: row{err: boom}}, "teams")
		require.NoError(t, err)

		_, err = s.Create(context.Background(), map[string]any{})
		assert.ErrorIs(t, err, postgres.ErrFailedToInsertDocument)
		assert.ErrorIs(t, err, boom)
		assert.False(t, postgres.IsDuplicateKeyError(err))
	})

	t.Run("unencodable data", func(t *testing.T) {
		t.Parallel()
		s, err := postgres.New(&querier{}, "teams")
		require.NoError(t, err)

		_, err = s.Create(context.Background(), map[string]any{"ch": make(chan int)})
		assert.ErrorIs(t, err, postgres.ErrFailedToEncodeDocument)
	})
}

func TestMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(postgres.Migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(postgres.Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS payload_objects")
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := postgres.Connect(context.Background(), postgres.Config{ConnectionString: "://bad"})
	assert.ErrorIs(t, err, postgres.ErrFailedToParseDBConfig)
}
