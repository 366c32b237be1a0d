package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"newskoop/newsroom/internal/api"
	"newskoop/newsroom/internal/db"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/middleware"
)

// RegisterRoutes builds the chi router with the global middleware chain and
// all API routes attached.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", api.HealthCheckHandler(db.DB, upSince))

	RegisterAPIRoutes(r, deps)

	logging.Info("router initialized")
	return r
}
