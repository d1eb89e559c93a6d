// Package router sets up all HTTP routes and middleware chains for the
// dealer site server. It organizes routes into public and admin groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dealerpress/internal/handlers"
	"dealerpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — not tenant-scoped.
	r.Get("/health", healthHandler)

	// Public configuration surface, scoped to the dealer by hostname.
	r.Get("/api/config", public.Config)
	r.Get("/theme.css", public.Stylesheet)
	r.Get("/api/components/{name}", public.Component)

	// Admin JSON API for the customization workflow. Rate-limited per IP:
	// these endpoints write to the database and invalidate caches.
	r.Route("/admin/api", func(r chi.Router) {
		limiter := middleware.NewRateLimiter(60, time.Minute)
		r.Use(limiter.Middleware)

		r.Get("/draft", admin.DraftGet)
		r.Put("/draft", admin.DraftUpsert)
		r.Delete("/draft", admin.DraftReset)
		r.Post("/publish", admin.Publish)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
