package routes

import (
	"net/http"
	"os"
	"time"

	"skyward/airport-api/internal/api"
	"skyward/airport-api/internal/db"
	"skyward/airport-api/internal/logging"
	"skyward/airport-api/internal/metrics"
	"skyward/airport-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies()
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		panic("JWT_SECRET is not set")
	}

	RegisterAPIRoutes(r, handlers, jwtSecret)

	return r
}
