package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"skullfire.dev/internal/config"
	"skullfire.dev/internal/imagecdn"
	"skullfire.dev/internal/metrics"
	"skullfire.dev/internal/middleware"
	"skullfire.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := metrics.New()

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))

	// Initialize services
	cdn := imagecdn.New(cfg.ImageCDN.BaseURL, cfg.ImageCDN.ProjectID, cfg.ImageCDN.Dataset)
	projectService, err := services.NewProjectService(cfg.Projects,
		services.WithAssetResolver(cdn),
		services.WithMetrics(m),
		services.WithLogger(logger.Named("projects")),
	)
	if err != nil {
		return nil, fmt.Errorf("init project service: %w", err)
	}
	profileService := services.NewProfileService(cfg.Profile)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	profileHandler := NewProfileHandler(profileService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, m))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/facets", projectHandler.GetFacets)
		r.Get("/projects/stats", projectHandler.GetStats)
		r.Get("/projects/featured", projectHandler.ListFeatured)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Profile endpoints
		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/profile/skills", profileHandler.GetSkills)
		r.Get("/profile/experience", profileHandler.GetExperience)
		r.Get("/profile/achievements", profileHandler.GetAchievements)
		r.Get("/profile/links", profileHandler.GetSocialLinks)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
