// Package page holds the transient UI state of one page view and the
// update functions that move it. Every update returns a new State.
package page

import (
	"folio.dev/internal/models"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/skills"
	"folio.dev/internal/stacking"
	"folio.dev/internal/typewriter"
)

// State is the per-session view state. Nothing in it is persisted.
type State struct {
	Selected *models.Project
	Spy      scrollspy.State
	Filter   string
	MenuOpen bool
	Scrolled bool
	Typed    typewriter.Typewriter
}

// Page binds the immutable content to the trackers that interpret it
type Page struct {
	Content *models.Content
	Tracker *scrollspy.Tracker
}

// New builds a page. present reports which sections exist in the host
// layout; nil treats every nav anchor as present.
func New(content *models.Content, present func(anchor string) bool) *Page {
	return &Page{
		Content: content,
		Tracker: scrollspy.New(content.Site.Anchors(), present),
	}
}

// Initial is the state on first load
func (p *Page) Initial() State {
	return State{
		Spy:    p.Tracker.Initial(),
		Filter: skills.All,
		Typed:  typewriter.New(p.Content.Site.Profile.Tagline),
	}
}

// Active is the highlighted nav section
func (s State) Active() string {
	return s.Spy.Active
}

// OpenProject selects the project with id. Unknown ids leave s unchanged.
func (p *Page) OpenProject(s State, id int) State {
	for i := range p.Content.Projects {
		if p.Content.Projects[i].ID == id {
			s.Selected = &p.Content.Projects[i]
			return s
		}
	}
	return s
}

// CloseProject dismisses the modal
func (p *Page) CloseProject(s State) State {
	s.Selected = nil
	return s
}

// SelectCategory switches the skills filter. Unknown categories are ignored.
func (p *Page) SelectCategory(s State, category string) State {
	if skills.Valid(p.Content.Skills, category) {
		s.Filter = category
	}
	return s
}

// VisibleSkills is the skills grid for the current filter
func (p *Page) VisibleSkills(s State) []skills.Skill {
	return skills.Filter(p.Content.Skills, s.Filter)
}

// ToggleMenu opens or closes the mobile menu
func (p *Page) ToggleMenu(s State) State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Navigate handles a nav link click: the target is highlighted at once
// and the mobile menu closes.
func (p *Page) Navigate(s State, anchor string) State {
	s.Spy = p.Tracker.Select(s.Spy, anchor)
	s.MenuOpen = false
	return s
}

// Observe feeds one visibility event to the scroll-spy
func (p *Page) Observe(s State, e scrollspy.Event) State {
	s.Spy = p.Tracker.Reduce(s.Spy, e)
	return s
}

// Scroll updates the header style for a page scroll offset
func (p *Page) Scroll(s State, scrollY float64) State {
	s.Scrolled = stacking.HeaderScrolled(scrollY)
	return s
}

// TickTyping reveals the next tagline character
func (p *Page) TickTyping(s State) State {
	s.Typed.Tick()
	return s
}
