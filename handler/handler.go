package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/payload"
)

// Create returns the handler for POST requests to res.
// It panics if res is invalid.
func Create(res Resource, opts ...Option) http.HandlerFunc {
	if err := res.Validate(); err != nil {
		panic(fmt.Sprintf("handler.Create: %v", err))
	}
	return create(res, newConfig(opts))
}

func create(res Resource, cfg *config) http.HandlerFunc {
	log := cfg.logger.With(logger.Component("handler"), logger.Resource(res.Name))

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		defer func() { cfg.metrics.Observe(res.Name, time.Since(start).Seconds()) }()

		body, err := readBody(w, r, cfg.maxBodySize)
		if err != nil {
			var perr *payload.Error
			if errors.As(err, &perr) {
				cfg.metrics.Rejected(res.Name, perr.Kind.String())
			} else {
				cfg.metrics.Failed(res.Name)
			}
			cfg.errorHandler(w, r, err)
			return
		}

		v := NewValidator(r, body, res, cfg.resolver(r))
		if !v.IsValid() {
			perr := v.Err()
			cfg.metrics.Rejected(res.Name, perr.Kind.String())
			log.WarnContext(ctx, "payload rejected",
				logger.Kind(perr.Kind.String()),
				logger.Fields(perr.Fields),
			)
			resp, err := v.OnInvalid()
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
			if err := resp.Render(w, r); err != nil {
				log.ErrorContext(ctx, "failed to render response", logger.Error(err))
			}
			return
		}
		cfg.metrics.Accepted(res.Name)

		resp, err := v.OnValid()
		if err != nil {
			cfg.metrics.Failed(res.Name)
			cfg.errorHandler(w, r, err)
			return
		}
		cfg.metrics.Created(res.Name)
		log.DebugContext(ctx, "object created", logger.Duration(time.Since(start)))

		if err := resp.Render(w, r); err != nil {
			log.ErrorContext(ctx, "failed to render response", logger.Error(err))
		}
	}
}

// Routes mounts POST /{name} for every resource on a new chi router.
// Unknown paths and methods answer with JSON errors.
// It panics on an invalid or duplicate resource.
func Routes(resources []Resource, opts ...Option) chi.Router {
	cfg := newConfig(opts)

	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(http.StatusNotFound, "not found").Render(w, r)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(http.StatusMethodNotAllowed, "method not allowed").Render(w, r)
	})

	seen := make(map[string]struct{}, len(resources))
	for _, res := range resources {
		if err := res.Validate(); err != nil {
			panic(fmt.Sprintf("handler.Routes: %v", err))
		}
		if _, dup := seen[res.Name]; dup {
			panic(fmt.Sprintf("handler.Routes: duplicate resource %q", res.Name))
		}
		seen[res.Name] = struct{}{}
		router.Post("/"+res.Name, create(res, cfg))
	}
	return router
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.Join(ErrBodyTooLarge, err)
		}
		return nil, &payload.Error{Kind: payload.KindMalformedJSON}
	}
	return body, nil
}
