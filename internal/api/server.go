package api

import (
	"net/http"
	"time"

	dossierapi "github.com/dossierimmo/form-gateway/internal/api/dossier"
	"github.com/dossierimmo/form-gateway/internal/api/docs"
	"github.com/dossierimmo/form-gateway/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(dossierHandler *dossierapi.Handler, rateLimiter *middleware.RateLimiter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(rateLimiter.Handler)                     // Per-IP rate limiting
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// The dossier form page with its two display regions
	r.Get("/", FormPage())

	// Register routes
	dossierapi.RegisterRoutes(r, dossierHandler)

	return r
}
