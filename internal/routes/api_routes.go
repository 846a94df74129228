package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward-va/horizon/internal/api"
	"skyward-va/horizon/internal/config"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, cfg *config.Config, handlers *api.Handlers) {

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret)) // global: all routes must be authenticated

		// Pilot-facing routes
		v1.Post("/pireps", handlers.SubmitPirep())
		v1.Get("/pireps", handlers.ListMyPireps())
		v1.Get("/pireps/{report_id}", handlers.GetPirep())

		v1.Get("/activities/{activity_id}/progress", handlers.GetActivityProgress())
		v1.Post("/tours/{tour_id}/start", handlers.StartTour())
		v1.Get("/tours/{tour_id}/progress", handlers.GetTourProgress())

		v1.Post("/telemetry", handlers.RecordTelemetry())
		v1.Get("/map/live", handlers.GetLiveMap())
		v1.Get("/leaderboard", handlers.GetLeaderboard())

		v1.Get("/pilots/{pilot_id}/stats", handlers.GetPilotStats())
		v1.Get("/pilots/{pilot_id}/awards", handlers.GetPilotAwards())
		v1.Post("/jumpseat", handlers.Jumpseat())

		v1.Post("/bids", handlers.CreateBid())
		v1.Get("/bids", handlers.ListBids())
		v1.Delete("/bids/{bid_id}", handlers.DeleteBid())

		// Staff-only group: report review
		v1.Group(func(staff chi.Router) {
			staff.Use(middleware.IsStaffMiddleware())

			staff.Get("/pireps/pending", handlers.ListPendingPireps())
			staff.Post("/pireps/{report_id}/decide", handlers.DecidePirep())
			staff.Post("/pireps/{report_id}/reopen", handlers.ReopenPirep())

			// Admin-only group
			staff.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Post("/pireps/{report_id}/propagate", handlers.RedrivePirep())
				admin.Post("/credits/adjust", handlers.AdjustCredits())
			})
		})
	})
}
