package handler

import (
	"log/slog"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/metrics"
)

// DefaultMaxBodySize caps request bodies at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

type config struct {
	logger       *slog.Logger
	resolver     ContextResolver
	metrics      *metrics.Metrics
	maxBodySize  int64
	errorHandler ErrorHandler
}

func newConfig(opts []Option) *config {
	cfg := &config{
		resolver:    RuleContext,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler(cfg.logger)
	}
	return cfg
}

// Option configures Create and Routes.
type Option func(*config)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithContextResolver sets how the auto-populate context is obtained.
func WithContextResolver(fn ContextResolver) Option {
	return func(c *config) {
		if fn != nil {
			c.resolver = fn
		}
	}
}

// WithMetrics records pipeline outcomes in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithMaxBodySize sets the request body limit in bytes.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(c *config) { c.maxBodySize = n }
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}
