package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/middleware"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, source content.Source, logger *zap.Logger) (http.Handler, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(source)
	skillService := services.NewSkillService(source)
	pageService := services.NewPageService(source)

	// Initialize handlers
	api := &apiResponder{logger: logger}
	projectHandler := NewProjectHandler(projectService, api)
	skillHandler := NewSkillHandler(skillService, api)
	siteHandler := NewSiteHandler(source, pageService, api)
	pageHandler := NewPageHandler(pageService, renderer, cfg, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Skills showcase
		r.Get("/skills", skillHandler.ListSkills)

		// Navigation, scroll-spy replay and stacking scales
		r.Get("/nav", siteHandler.GetNav)
		r.Post("/scrollspy", siteHandler.ReplayScrollSpy)
		r.Get("/stacking", siteHandler.GetStacking)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			api.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Bundled project images
	imageServer := http.FileServer(http.Dir(filepath.Clean(cfg.Media.ImageDir)))
	r.Handle("/images/*", http.StripPrefix("/images", imageServer))

	// The page itself
	r.Get("/", pageHandler.ServePage)

	return r, nil
}

// apiResponder writes JSON bodies and logs encoding failures
type apiResponder struct {
	logger *zap.Logger
}

// respondJSON writes a JSON response
func (a *apiResponder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func (a *apiResponder) respondError(w http.ResponseWriter, status int, message string) {
	a.respondJSON(w, status, map[string]string{"error": message})
}
