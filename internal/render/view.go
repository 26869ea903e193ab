package render

import (
	"net/url"
	"slices"
	"strconv"
	"time"

	"folio.dev/internal/media"
	"folio.dev/internal/models"
	"folio.dev/internal/page"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/skills"
	"folio.dev/internal/stacking"
)

// Sections are the ids of the page sections the template emits, in page
// order. Nav anchors outside this set have no target on the page.
var Sections = []string{"home", "skills", "projects", "contact"}

// HasSection reports whether the page renders a section for anchor
func HasSection(anchor string) bool {
	return slices.Contains(Sections, anchor)
}

// Options carries host settings into the page
type Options struct {
	Placeholder  string
	TypeInterval time.Duration
	ScrollSpy    scrollspy.Options
}

// NavItem is a header link
type NavItem struct {
	Name   string
	Href   string
	Anchor string
	Active bool
}

// Tab is a skills filter button
type Tab struct {
	Name   string
	Label  string
	Href   string
	Active bool
}

// SkillCard is one cell of the skills grid
type SkillCard struct {
	Name     string
	Category string
	Icon     string
}

// Badge is a technology chip
type Badge struct {
	Tech  string
	Emoji string
}

// Card is a project in the stacking gallery
type Card struct {
	Project models.Project
	Index   int
	Href    string
	Image   string
	Badges  []Badge
	Tech    []Badge
}

// Modal is the open project detail view
type Modal struct {
	Project   models.Project
	Image     string
	Tech      []Badge
	CloseHref string
}

// View is everything the page template needs
type View struct {
	Profile            models.Profile
	Nav                []NavItem
	Active             string
	MenuOpen           bool
	Tabs               []Tab
	Skills             []SkillCard
	Cards              []Card
	Modal              *Modal
	Social             []models.SocialLink
	Copyright          string
	Placeholder        string
	ProfilePlaceholder string
	TypeIntervalMs     int64
	ScrollSpy          scrollspy.Options
	// ScaleStep is how much each card below shrinks the one above it
	ScaleStep          float64
}

func badges(stack []string) []Badge {
	out := make([]Badge, 0, len(stack))
	for _, t := range stack {
		out = append(out, Badge{Tech: t, Emoji: media.TechEmoji(t)})
	}
	return out
}

// href builds a same-page link that preserves the skills filter
func href(category string, project int, fragment string) string {
	q := url.Values{}
	if category != "" && category != skills.All {
		q.Set("category", category)
	}
	if project != 0 {
		q.Set("project", strconv.Itoa(project))
	}
	u := url.URL{Path: "/", RawQuery: q.Encode(), Fragment: fragment}
	return u.String()
}

// BuildView projects page state onto the template model
func BuildView(p *page.Page, st page.State, opts Options) View {
	c := p.Content
	resolver := media.NewResolver(c.Projects, opts.Placeholder)

	v := View{
		Profile:            c.Site.Profile,
		Active:             st.Active(),
		MenuOpen:           st.MenuOpen,
		Social:             c.Site.Social,
		Copyright:          c.Site.Copyright,
		Placeholder:        resolver.Placeholder(),
		ProfilePlaceholder: media.ProfilePlaceholder,
		TypeIntervalMs:     opts.TypeInterval.Milliseconds(),
		ScrollSpy:          opts.ScrollSpy,
		ScaleStep:          stacking.ScaleStep,
	}

	for _, l := range c.Site.Nav {
		v.Nav = append(v.Nav, NavItem{
			Name:   l.Name,
			Href:   l.Href,
			Anchor: l.Anchor(),
			Active: l.Anchor() == st.Active(),
		})
	}

	for _, cat := range skills.Categories(c.Skills) {
		v.Tabs = append(v.Tabs, Tab{
			Name:   cat,
			Label:  skills.Label(cat),
			Href:   href(cat, 0, "skills"),
			Active: cat == st.Filter,
		})
	}
	for _, s := range p.VisibleSkills(st) {
		v.Skills = append(v.Skills, SkillCard{Name: s.Name, Category: s.Category, Icon: skills.Icon(s.Name)})
	}

	for i := range c.Projects {
		proj := c.Projects[i]
		v.Cards = append(v.Cards, Card{
			Project: proj,
			Index:   i,
			Href:    href(st.Filter, proj.ID, "projects"),
			Image:   resolver.Resolve(&proj),
			Badges:  badges(media.CardBadges(proj.TechStack)),
			Tech:    badges(proj.TechStack),
		})
	}

	if st.Selected != nil {
		v.Modal = &Modal{
			Project:   *st.Selected,
			Image:     resolver.Resolve(st.Selected),
			Tech:      badges(st.Selected.TechStack),
			CloseHref: href(st.Filter, 0, "projects"),
		}
	}
	return v
}
