package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"skyward-va/horizon/internal/api"
	"skyward-va/horizon/internal/config"
	"skyward-va/horizon/internal/db"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/middleware"
	"skyward-va/horizon/internal/workers"
)

// RegisterRoutes builds the Chi router, wires dependencies and starts
// the background workers.
func RegisterRoutes(ctx context.Context, cfg *config.Config, redisClient *redis.Client, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, redisClient, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg, redisClient)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	// Background workers: bid sweeper + notification consumer
	workers.InitWorkers(ctx, deps.Repo.Bids, deps.Services.Stream)

	RegisterAPIRoutes(r, metricsReg, cfg, handlers)

	return r
}
