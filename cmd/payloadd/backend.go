package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/payloadkit/handler"
	"github.com/dmitrymomot/payloadkit/pkg/config"
	"github.com/dmitrymomot/payloadkit/pkg/httpserver"
	"github.com/dmitrymomot/payloadkit/pkg/store/memory"
	"github.com/dmitrymomot/payloadkit/pkg/store/mongostore"
	"github.com/dmitrymomot/payloadkit/pkg/store/postgres"
	"github.com/dmitrymomot/payloadkit/pkg/store/redisstore"
	"github.com/dmitrymomot/payloadkit/pkg/store/s3store"
	"github.com/dmitrymomot/payloadkit/pkg/store/searchstore"
)

// ErrUnknownStore is returned for an unsupported PAYLOADKIT_STORE value.
var ErrUnknownStore = errors.New("unknown store backend")

// backend opens one persistence adapter per resource on a shared connection.
type backend struct {
	name   string
	open   func(resource string) (handler.PersistenceAdapter, error)
	checks map[string]httpserver.Check
	close  func()
}

func adapter[S handler.PersistenceAdapter](s S, err error) (handler.PersistenceAdapter, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openBackend(ctx context.Context, kind string, log *slog.Logger) (*backend, error) {
	switch kind {
	case "memory":
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := memory.New(resource)
				return adapter(s, err)
			},
			close: func() {},
		}, nil

	case "postgres":
		var cfg postgres.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := postgres.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := postgres.New(pool, resource)
				return adapter(s, err)
			},
			checks: map[string]httpserver.Check{kind: postgres.Healthcheck(pool)},
			close:  pool.Close,
		}, nil

	case "redis":
		var cfg redisstore.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redisstore.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := redisstore.New(client, resource, cfg.KeyPrefix, cfg.TTL)
				return adapter(s, err)
			},
			checks: map[string]httpserver.Check{kind: redisstore.Healthcheck(client)},
			close:  func() { _ = client.Close() },
		}, nil

	case "mongo":
		var cfg mongostore.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongostore.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database)
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := mongostore.NewFromDatabase(db, resource)
				return adapter(s, err)
			},
			checks: map[string]httpserver.Check{kind: mongostore.Healthcheck(client)},
			close:  func() { _ = client.Disconnect(context.WithoutCancel(ctx)) },
		}, nil

	case "opensearch":
		var cfg searchstore.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := searchstore.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := searchstore.New(client, resource, cfg.IndexPrefix, cfg.Refresh)
				return adapter(s, err)
			},
			checks: map[string]httpserver.Check{kind: searchstore.Healthcheck(client)},
			close:  func() {},
		}, nil

	case "s3":
		var cfg s3store.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := s3store.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			name: kind,
			open: func(resource string) (handler.PersistenceAdapter, error) {
				s, err := s3store.New(client, cfg.Bucket, cfg.KeyPrefix, resource)
				return adapter(s, err)
			},
			checks: map[string]httpserver.Check{kind: s3store.Healthcheck(client, cfg.Bucket)},
			close:  func() {},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
}
