package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"folio.dev/internal/content"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/services"
	"folio.dev/internal/stacking"
)

// maxReplayEvents bounds the body of a scroll-spy replay
const maxReplayEvents = 10000

// SiteHandler serves navigation and the scroll logic
type SiteHandler struct {
	source      content.Source
	pageService *services.PageService
	api         *apiResponder
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(source content.Source, ps *services.PageService, api *apiResponder) *SiteHandler {
	return &SiteHandler{source: source, pageService: ps, api: api}
}

// GetNav handles GET /api/nav
func (h *SiteHandler) GetNav(w http.ResponseWriter, r *http.Request) {
	h.api.respondJSON(w, http.StatusOK, h.source.Current().Site.Nav)
}

// ReplayScrollSpy handles POST /api/scrollspy with {"events": [...]}
func (h *SiteHandler) ReplayScrollSpy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Events []scrollspy.Event `json:"events"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.api.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Events) > maxReplayEvents {
		h.api.respondError(w, http.StatusBadRequest, "Too many events")
		return
	}

	h.api.respondJSON(w, http.StatusOK, h.pageService.Replay(req.Events))
}

// GetStacking handles GET /api/stacking?p=&n=
func (h *SiteHandler) GetStacking(w http.ResponseWriter, r *http.Request) {
	p, err := strconv.ParseFloat(r.URL.Query().Get("p"), 64)
	if err != nil {
		h.api.respondError(w, http.StatusBadRequest, "Invalid progress")
		return
	}

	var scales []float64
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 1000 {
			h.api.respondError(w, http.StatusBadRequest, "Invalid card count")
			return
		}
		scales = stacking.CardScales(p, n)
	} else {
		scales = h.pageService.CardScales(p)
	}
	if scales == nil {
		scales = []float64{}
	}

	h.api.respondJSON(w, http.StatusOK, map[string]interface{}{
		"progress": stacking.Clamp01(p),
		"scales":   scales,
	})
}
