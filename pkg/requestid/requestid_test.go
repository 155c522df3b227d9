package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(header string) (seen, echoed string) {
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
		}))
		r := httptest.NewRequest(http.MethodPost, "/api/teams", nil)
		if header != "" {
			r.Header.Set(requestid.Header, header)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return seen, w.Header().Get(requestid.Header)
	}

	t.Run("reuses valid header", func(t *testing.T) {
		t.Parallel()
		seen, echoed := run("abc-123_X")
		assert.Equal(t, "abc-123_X", seen)
		assert.Equal(t, "abc-123_X", echoed)
	})

	t.Run("generates when missing", func(t *testing.T) {
		t.Parallel()
		seen, echoed := run("")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, echoed)
	})

	t.Run("replaces invalid header", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 129)} {
			seen, _ := run(bad)
			assert.NotEqual(t, bad, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
	assert.Equal(t, "r1", requestid.FromContext(requestid.WithContext(context.Background(), "r1")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "r1"), "msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r1", entry["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "msg")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
}
