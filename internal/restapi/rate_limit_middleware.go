package restapi

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-client rate limiting keyed by remote host
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
// ratePerInterval: number of requests allowed per interval per client.
// A non-positive rate disables limiting.
func NewRateLimitMiddleware(ratePerInterval int, interval time.Duration) func(http.Handler) http.Handler {
	if ratePerInterval <= 0 {
		return nil
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rate.Every(interval / time.Duration(ratePerInterval)),
		burstSize:   ratePerInterval,
		cleanupTick: time.NewTicker(5 * time.Minute),
	}
	go middleware.cleanup()

	return middleware.rateLimitHandler
}

// getLimiter gets or creates a rate limiter for the given client
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[client]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[client] = limiter
	return limiter
}

func (rl *RateLimitMiddleware) rateLimitHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		limiter := rl.getLimiter(host)
		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(1))
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "rate limit exceeded",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// cleanup periodically resets the limiter map so idle clients do not
// accumulate forever
func (rl *RateLimitMiddleware) cleanup() {
	for range rl.cleanupTick.C {
		rl.mu.Lock()
		rl.limiters = make(map[string]*rate.Limiter)
		rl.mu.Unlock()
	}
}
