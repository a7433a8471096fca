package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions carries the router's non-handler collaborators.
type RouterOptions struct {
	// CORSOrigins lists allowed origins; empty means any origin.
	CORSOrigins []string
	// Recorder receives per-request metrics. Optional.
	Recorder HTTPRecorder
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

// NewRouter builds and returns the Chi router with all routes configured.
// No route requires authentication; CORS is permissive by default.
func NewRouter(handlers *Handlers, opts RouterOptions, log *slog.Logger) *chi.Mux {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.Recorder != nil {
		r.Use(Metrics(opts.Recorder))
	}

	r.Get("/api/health", Health)
	r.Get("/api/flights/{flightNumber}", handlers.GetFlight)

	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
