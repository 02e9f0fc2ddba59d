package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"delaycast.arrivals.org/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests.
// Each request gets a uuid so log lines from one request can be correlated.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.HandlerFunc) http.Handler {
	return func(next http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			requestLogger := logger
			if requestLogger != nil {
				requestLogger = requestLogger.With(slog.String("request_id", requestID))
			}
			ctx := logging.WithLogger(r.Context(), requestLogger)
			r = r.WithContext(ctx)

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			logging.LogHTTPRequest(requestLogger,
				r.Method,
				r.URL.Path,
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6,
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}
