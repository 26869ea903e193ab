package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	api            *apiResponder
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, api *apiResponder) *ProjectHandler {
	return &ProjectHandler{projectService: ps, api: api}
}

// ListProjects handles GET /api/projects?featured=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	featured := false
	if raw := r.URL.Query().Get("featured"); raw != "" {
		var err error
		if featured, err = strconv.ParseBool(raw); err != nil {
			h.api.respondError(w, http.StatusBadRequest, "Invalid featured flag")
			return
		}
	}

	projects := h.projectService.GetAll()
	if featured {
		projects = h.projectService.Featured()
	}
	if projects == nil {
		projects = []models.Project{}
	}
	h.api.respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.api.respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		h.api.respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	h.api.respondJSON(w, http.StatusOK, project)
}
