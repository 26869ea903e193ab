package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// PageHandler renders the single page
type PageHandler struct {
	pageService *services.PageService
	renderer    *render.Renderer
	opts        render.Options
	logger      *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService, rr *render.Renderer, cfg *config.Config, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		pageService: ps,
		renderer:    rr,
		opts: render.Options{
			Placeholder:  cfg.Media.Placeholder,
			TypeInterval: cfg.Hero.TypeInterval,
			ScrollSpy:    cfg.ScrollSpy,
		},
		logger: logger,
	}
}

// ServePage handles GET /?category=&project=&section=
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.PageQuery{
		Category: q.Get("category"),
		Section:  q.Get("section"),
	}
	if id, err := strconv.Atoi(q.Get("project")); err == nil {
		query.ProjectID = id
	}

	p := h.pageService.Page()
	view := render.BuildView(p, h.pageService.State(p, query), h.opts)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		h.logger.Error("Page render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("Page write aborted", zap.Error(err))
	}
}
