package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/validate", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		assert.Equal(t, ctxID, respID)
		_, err := uuid.Parse(respID)
		assert.NoError(t, err)
	})

	t.Run("reuses valid client ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"abc123", "batch-2025_09", "550e8400-e29b-41d4-a716-446655440000"} {
			ctxID, respID := serve(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, respID)
		}
	})

	t.Run("replaces invalid client ids", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, id := range invalid {
			ctxID, respID := serve(t, id)
			assert.NotEqual(t, id, ctxID)
			assert.Equal(t, ctxID, respID)
		}
	})
}

func TestValid(t *testing.T) {
	t.Parallel()
	assert.True(t, requestid.Valid(strings.Repeat("a", 128)))
	assert.False(t, requestid.Valid(strings.Repeat("a", 129)))
	assert.False(t, requestid.Valid(""))
}

func TestContext(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "test-id", requestid.FromContext(requestid.WithContext(context.Background(), "test-id")))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "with id")
	log.InfoContext(context.Background(), "without id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"request_id":"req-42"`)
	assert.NotContains(t, lines[1], "request_id")
}
