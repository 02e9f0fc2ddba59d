package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"delaycast.arrivals.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// SetRoutes registers the API routes on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	logging := NewRequestLoggingMiddleware(api.Logger)
	wrap := func(h http.HandlerFunc) http.Handler {
		if api.rateLimiter != nil {
			return api.rateLimiter(logging(h))
		}
		return logging(h)
	}

	router.Handler(http.MethodPost, "/api/v1/predict", wrap(api.predictHandler))
	router.Handler(http.MethodGet, "/api/v1/airport/:code", wrap(api.airportHandler))
	router.Handler(http.MethodGet, "/api/v1/route/:origin/:dest", wrap(api.routeHandler))
	router.Handler(http.MethodGet, "/api/v1/current-time", wrap(api.currentTimeHandler))
}
