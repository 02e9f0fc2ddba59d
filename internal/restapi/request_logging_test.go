package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delaycast.arrivals.org/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	middleware := NewRequestLoggingMiddleware(logger)
	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/airport/ZZZ", nil)
	handler.ServeHTTP(rec, req)

	// Request ID header is a valid uuid.
	_, err := uuid.Parse(rec.Header().Get("X-Request-Id"))
	assert.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/airport/ZZZ", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
