package httpserver

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/response"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health returns a readiness handler. It answers 200 {"status":"ok"} when
// every check passes and 503 with the failing check names otherwise.
// Error details are logged, not returned.
func Health(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	names := slices.Sorted(maps.Keys(checks))

	return func(w http.ResponseWriter, r *http.Request) {
		body := healthBody{Status: "ok"}
		for _, name := range names {
			if err := checks[name](r.Context()); err != nil {
				log.WarnContext(r.Context(), "health check failed", slog.String("check", name), logger.Error(err))
				if body.Checks == nil {
					body.Checks = make(map[string]string)
				}
				body.Checks[name] = "unavailable"
				body.Status = "unavailable"
			}
		}

		status := http.StatusOK
		if body.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		if err := response.Render(w, r, status, body); err != nil {
			log.ErrorContext(r.Context(), "failed to render health response", logger.Error(err))
		}
	}
}
