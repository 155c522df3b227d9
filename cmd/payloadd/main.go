package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/payloadkit/handler"
	"github.com/dmitrymomot/payloadkit/pkg/config"
	"github.com/dmitrymomot/payloadkit/pkg/httpserver"
	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/metrics"
	"github.com/dmitrymomot/payloadkit/pkg/payload"
	"github.com/dmitrymomot/payloadkit/pkg/requestid"
	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "payloadd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	rules, err := rule.LoadFile(cfg.RulesPath)
	if err != nil {
		return err
	}

	store, err := openBackend(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer store.close()

	log.Info("initializing payloadd",
		slog.String("store", store.name),
		slog.Any("resources", rules.Names()),
	)

	router, err := newRouter(cfg, log, rules, store, metrics.New(prometheus.NewRegistry()))
	if err != nil {
		return err
	}

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}

// newRouter mounts every registered resource under /api next to the
// health and metrics endpoints.
func newRouter(cfg Config, log *slog.Logger, rules *rule.Registry, store *backend, m *metrics.Metrics) (http.Handler, error) {
	resources := make([]handler.Resource, 0, rules.Len())
	for _, name := range rules.Names() {
		r, err := rules.Get(name)
		if err != nil {
			return nil, err
		}
		adapter, err := store.open(name)
		if err != nil {
			return nil, err
		}
		res := handler.Resource{Name: name, Rule: r, Store: adapter}
		if cfg.EnforceConstraints {
			res.Steps = []payload.Step{payload.EnforceConstraints(r)}
		}
		resources = append(resources, res)
	}

	opts := []handler.Option{
		handler.WithLogger(log),
		handler.WithMetrics(m),
		handler.WithContextResolver(handler.HeaderContext(map[string]string{"user": cfg.UserHeader})),
	}
	if cfg.MaxBodyBytes > 0 {
		opts = append(opts, handler.WithMaxBodySize(cfg.MaxBodyBytes))
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		requestid.Middleware,
		middleware.Recoverer,
	)
	router.Get("/healthz", httpserver.Health(log, store.checks))
	router.Method(http.MethodGet, "/metrics", m.Handler())
	router.Mount("/api", handler.Routes(resources, opts...))
	return router, nil
}
