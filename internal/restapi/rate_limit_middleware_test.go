package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddlewareBlocksAfterBurst(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	require.NotNil(t, middleware)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/current-time", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimitMiddlewareIsPerClient(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	handler.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.2:5000"
	handler.ServeHTTP(second, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	assert.Nil(t, NewRateLimitMiddleware(0, time.Second))
	assert.Nil(t, NewRateLimitMiddleware(-1, time.Second))
}
