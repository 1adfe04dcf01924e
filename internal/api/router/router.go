// Package router assembles the HTTP surface: the public record read, the
// admin mutations, health and metrics.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andestack/contactline/internal/contact"
	httpmiddleware "github.com/andestack/contactline/internal/http/middleware"
	"github.com/andestack/contactline/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	ContactHandler *contact.Handler

	// Namespace supplies the explicitly configured namespace, consulted per
	// request so environment changes apply without a restart.
	Namespace func() string

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// MutationLimiter throttles POSTs per client so credential guessing
	// cannot run unthrottled. Optional.
	MutationLimiter *httpmiddleware.RateLimiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// The record itself lives at the root: public read, admin mutation.
	r.Group(func(rec chi.Router) {
		rec.Use(resolveNamespace(cfg.Namespace))
		rec.Get("/", cfg.ContactHandler.Read)
		if cfg.MutationLimiter != nil {
			rec.With(httpmiddleware.RateLimit(cfg.MutationLimiter)).Post("/", cfg.ContactHandler.Mutate)
		} else {
			rec.Post("/", cfg.ContactHandler.Mutate)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "ok",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
