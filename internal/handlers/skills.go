package handlers

import (
	"errors"
	"net/http"

	"folio.dev/internal/services"
)

// SkillHandler serves the skills showcase
type SkillHandler struct {
	skillService *services.SkillService
	api          *apiResponder
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(ss *services.SkillService, api *apiResponder) *SkillHandler {
	return &SkillHandler{skillService: ss, api: api}
}

// ListSkills handles GET /api/skills?category=
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	list, err := h.skillService.Filter(category)
	if errors.Is(err, services.ErrUnknownCategory) {
		h.api.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.api.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.skillService.Categories(),
		"skills":     list,
	})
}
