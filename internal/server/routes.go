package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"altboard/internal/config"
	"altboard/internal/db"
	"altboard/internal/email"
	"altboard/internal/handlers"
	"altboard/internal/handlers/api"
	"altboard/internal/middleware"
	"altboard/internal/webhook"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, categories *config.Categories) {
	adminAuth := middleware.NewAdminAuth(s.Cfg.AdminToken)
	hook := webhook.New(s.Cfg.WebhookURL)
	notifier := email.NewNotifier(s.Cfg)

	suggestionHandler := api.NewSuggestionHandler(database, s.Cfg, hook)
	adminHandler := api.NewAdminHandler(database, notifier)
	categoryHandler := api.NewCategoryHandler(categories)
	probeHandler := handlers.NewProbeHandler(database)

	// Public API
	s.App.Post("/api/submit-suggestion", suggestionHandler.Submit)
	s.App.Get("/api/categories", categoryHandler.List)

	// Admin API (shared bearer secret). The token check runs first; the
	// handlers are only reached via c.Next().
	s.App.Get("/api/admin-suggestions", adminAuth.RequireToken, adminHandler.List)
	s.App.Patch("/api/admin-suggestions", adminAuth.RequireToken, adminHandler.Review)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
