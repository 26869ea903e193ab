package services

import (
	"folio.dev/internal/content"
	"folio.dev/internal/page"
	"folio.dev/internal/render"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/stacking"
)

// PageQuery is the view state a request asks for
type PageQuery struct {
	Category  string
	ProjectID int
	Section   string
}

// PageService builds page state for the HTTP host. Each request starts
// from the initial state; nothing is kept between requests.
type PageService struct {
	source content.Source
}

// NewPageService creates a new PageService
func NewPageService(source content.Source) *PageService {
	return &PageService{source: source}
}

// Page binds the current content. Only anchors with a rendered section
// can become active.
func (s *PageService) Page() *page.Page {
	return page.New(s.source.Current(), render.HasSection)
}

// State applies q to the initial state of p. Unknown categories,
// projects and sections are ignored.
func (s *PageService) State(p *page.Page, q PageQuery) page.State {
	st := p.Initial()
	if q.Category != "" {
		st = p.SelectCategory(st, q.Category)
	}
	if q.ProjectID != 0 {
		st = p.OpenProject(st, q.ProjectID)
	}
	if q.Section != "" {
		st = p.Navigate(st, q.Section)
	}
	return st
}

// Replay runs a recorded sequence of visibility events through the
// scroll-spy, starting from the first section.
func (s *PageService) Replay(events []scrollspy.Event) scrollspy.State {
	p := s.Page()
	return p.Tracker.Replay(p.Tracker.Initial(), events...)
}

// CardScales returns the stacking scale of every project card at p
func (s *PageService) CardScales(p float64) []float64 {
	return stacking.CardScales(p, len(s.source.Current().Projects))
}
