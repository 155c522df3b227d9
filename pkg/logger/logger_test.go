package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("level name", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"), logger.WithLevelName("nonsense"))
		log.Debug("visible")
		assert.Equal(t, "DEBUG", decode(t, buf)["level"])
	})

	t.Run("static attrs", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "payloadd")))
		log.Info("msg")
		assert.Equal(t, "payloadd", decode(t, buf)["svc"])
	})

	t.Run("context value", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", key{}))

		log.InfoContext(context.WithValue(context.Background(), key{}, "t1"), "msg")
		assert.Equal(t, "t1", decode(t, buf)["tenant"])

		buf.Reset()
		log.InfoContext(context.Background(), "msg")
		assert.NotContains(t, decode(t, buf), "tenant")
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("request_id", "r1"), true
			}),
		)
		log.With(logger.Component("handler")).InfoContext(context.Background(), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "r1", entry["request_id"])
		assert.Equal(t, "handler", entry["component"])

		buf.Reset()
		log.WithGroup("g").InfoContext(context.Background(), "msg", slog.String("k", "v"))
		entry = decode(t, buf)
		assert.Equal(t, map[string]any{"k": "v", "request_id": "r1"}, entry["g"])
	})

	t.Run("environment defaults", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("production", "payloadd"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "payloadd", entry["service"])
		assert.Equal(t, "production", entry["env"])

		buf.Reset()
		dev := logger.New(logger.WithEnvironment("", ""), logger.WithOutput(buf))
		dev.Debug("msg")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("discard", func(t *testing.T) {
		t.Parallel()
		log := logger.Discard()
		assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.True(t, logger.Component("c").Equal(slog.String("component", "c")))
	assert.True(t, logger.Event("e").Equal(slog.String("event", "e")))
	assert.True(t, logger.RequestID("r").Equal(slog.String("request_id", "r")))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Resource("teams").Equal(slog.String("resource", "teams")))
	assert.True(t, logger.Kind("unknown_fields").Equal(slog.String("kind", "unknown_fields")))
	assert.Equal(t, []string{"a"}, logger.Fields([]string{"a"}).Value.Any())
	assert.True(t, logger.Fields(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Status(400).Equal(slog.Int("status", 400)))
	assert.True(t, logger.Duration(time.Second).Equal(slog.Duration("duration", time.Second)))
}
