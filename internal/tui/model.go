// Package tui renders the portfolio page in the terminal. The terminal
// viewport plays the browser's part: scrolling it drives the scroll-spy,
// the stacking cards and the header style.
package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"folio.dev/internal/intersect"
	"folio.dev/internal/media"
	"folio.dev/internal/models"
	"folio.dev/internal/page"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/skills"
	"folio.dev/internal/stacking"
	"folio.dev/internal/typewriter"
)

// linePx approximates the pixel height of a terminal row, so the header
// switches style at the same scroll distance as in a browser.
const linePx = 16

// headerLines is the height reserved for the header in both styles
const headerLines = 2

// Options configures the terminal page
type Options struct {
	TypeInterval time.Duration
	ScrollSpy    scrollspy.Options
	Placeholder  string
	// ImageDir is where /images/... paths are looked up
	ImageDir string
	Logger   *zap.Logger
}

type typeTickMsg struct{}

// Model is the root bubbletea model
type Model struct {
	page     *page.Page
	state    page.State
	keys     *KeyMap
	help     help.Model
	viewport viewport.Model
	observer *intersect.Observer
	spyOpts  scrollspy.Options
	spans    map[string]intersect.Span
	cardTops []int
	images   []media.Source
	focus    int
	interval time.Duration
	markdown *glamour.TermRenderer
	logger   *zap.Logger
	width    int
	height   int
	ready    bool
}

// New creates the terminal page for c
func New(c *models.Content, opts Options) Model {
	if opts.TypeInterval <= 0 {
		opts.TypeInterval = typewriter.DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	// Terminal sections are taller than the trimmed viewport, so any
	// overlap counts as intersecting.
	spy := opts.ScrollSpy
	spy.Threshold = 0

	p := page.New(c, rendered)
	return Model{
		page:     p,
		state:    p.Initial(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spyOpts:  spy,
		images:   loadImages(c.Projects, opts.Placeholder, opts.ImageDir),
		interval: opts.TypeInterval,
		logger:   opts.Logger,
	}
}

// loadImages resolves each project's image. Bundled images that are
// missing on disk fall back to the placeholder; remote sources are
// assumed to load.
func loadImages(projects []models.Project, placeholder, dir string) []media.Source {
	resolver := media.NewResolver(projects, placeholder)
	sources := make([]media.Source, len(projects))
	for i := range projects {
		src := media.NewSource(resolver.Resolve(&projects[i]), resolver.Placeholder())
		if local, ok := strings.CutPrefix(src.Src(), "/images/"); ok {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(local))); err != nil {
				src.Fail()
			}
		}
		sources[i] = src
	}
	return sources
}

// State exposes the page state
func (m Model) State() page.State {
	return m.state
}

// Focus is the index of the project card under the cursor
func (m Model) Focus() int {
	return m.focus
}

func (m Model) typeTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return typeTickMsg{} })
}

// Init starts the typing effect
func (m Model) Init() tea.Cmd {
	if m.state.Typed.Done() {
		return nil
	}
	return m.typeTick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.markdown = newMarkdown(msg.Width)
		m.resize()
		m.relayout()
		return m, nil

	case typeTickMsg:
		m.state = m.page.TickTyping(m.state)
		m.refresh()
		if m.state.Typed.Done() {
			return m, nil
		}
		return m, m.typeTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.state.Selected != nil || m.state.MenuOpen || !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.afterScroll()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	// modal swallows everything but close
	if m.state.Selected != nil {
		if key.Matches(msg, m.keys.Close) {
			m.state = m.page.CloseProject(m.state)
		}
		return m, nil
	}

	if m.state.MenuOpen {
		switch {
		case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Close):
			m.state = m.page.ToggleMenu(m.state)
		case key.Matches(msg, m.keys.Section):
			m.navigate(msg.String())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		m.relayout()
	case key.Matches(msg, m.keys.Menu):
		m.state = m.page.ToggleMenu(m.state)
	case key.Matches(msg, m.keys.Section):
		m.navigate(msg.String())
	case key.Matches(msg, m.keys.NextTab):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.NextCard):
		m.focusCard(m.focus + 1)
	case key.Matches(msg, m.keys.PrevCard):
		m.focusCard(m.focus - 1)
	case key.Matches(msg, m.keys.Open):
		if projects := m.page.Content.Projects; m.focus < len(projects) {
			m.state = m.page.OpenProject(m.state, projects[m.focus].ID)
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.afterScroll()
		return m, cmd
	}
	return m, nil
}

// navigate jumps to the nth nav link, counted from 1
func (m *Model) navigate(digit string) {
	n := int(digit[0] - '0')
	nav := m.page.Content.Site.Nav
	if n < 1 || n > len(nav) {
		return
	}
	anchor := nav[n-1].Anchor()
	m.state = m.page.Navigate(m.state, anchor)
	if span, ok := m.spans[anchor]; ok {
		m.viewport.SetYOffset(int(span.Top))
		m.afterScroll()
	}
}

func (m *Model) cycleCategory(step int) {
	cats := skills.Categories(m.page.Content.Skills)
	cur := 0
	for i, c := range cats {
		if c == m.state.Filter {
			cur = i
		}
	}
	next := (cur + step + len(cats)) % len(cats)
	m.state = m.page.SelectCategory(m.state, cats[next])
	m.relayout()
}

func (m *Model) focusCard(i int) {
	n := len(m.page.Content.Projects)
	if n == 0 {
		return
	}
	m.focus = min(max(i, 0), n-1)
	if span, ok := m.spans["projects"]; ok {
		m.viewport.SetYOffset(int(span.Top) + m.cardTopAt(m.focus))
	}
	m.afterScroll()
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.help.Width = m.width
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerLines-helpLines, 1)
}

// relayout re-measures the sections and restarts the observer. The new
// observer reports every section once, as a freshly attached one would.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	l := m.buildLayout(m.currentFrame())
	m.spans, m.cardTops = l.spans, l.cardTops
	m.observer = intersect.New(m.page.Tracker.Anchors(), m.spans, m.spyOpts)
	m.afterScroll()
}

// afterScroll feeds the new viewport position to the scroll-spy and header
func (m *Model) afterScroll() {
	if m.observer != nil {
		vp := intersect.Viewport{Offset: float64(m.viewport.YOffset), Height: float64(m.viewport.Height)}
		for _, e := range m.observer.Update(vp) {
			m.logger.Debug("Section visibility",
				zap.String("anchor", e.Anchor),
				zap.Bool("intersecting", e.Intersecting),
				zap.Float64("ratio", e.Ratio))
			m.state = m.page.Observe(m.state, e)
		}
	}
	m.state = m.page.Scroll(m.state, float64(m.viewport.YOffset)*linePx)
	m.refresh()
}

// refresh re-renders the document at the current scroll position
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	l := m.buildLayout(m.currentFrame())
	offset := m.viewport.YOffset
	m.viewport.SetContent(l.doc)
	m.viewport.SetYOffset(offset)
}

func newMarkdown(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(min(width, 100)-12, 20)),
	)
	if err != nil {
		return nil
	}
	return r
}

// View renders the terminal page
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch {
	case m.state.Selected != nil:
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.renderModal())
	case m.state.MenuOpen:
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.renderMenu())
	default:
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	site := m.page.Content.Site
	logo := LogoStyle.Render(site.Profile.Logo) + DotStyle.Render(".")

	var links []string
	for _, l := range site.Nav {
		if l.Anchor() == m.state.Active() {
			links = append(links, ActiveNavStyle.Render(l.Name))
		} else {
			links = append(links, NavStyle.Render(l.Name))
		}
	}
	nav := strings.Join(links, " ")
	gap := max(m.width-2-lipgloss.Width(logo)-lipgloss.Width(nav), 1)
	line := logo + strings.Repeat(" ", gap) + nav

	style := HeaderStyle
	if m.state.Scrolled {
		style = ScrolledHeaderStyle
	}
	return style.Width(m.width).Render(line)
}

func (m Model) renderMenu() string {
	var items []string
	for i, l := range m.page.Content.Site.Nav {
		label := l.Name
		if l.Anchor() == m.state.Active() {
			items = append(items, ActiveNavStyle.Render(label))
		} else {
			items = append(items, NavStyle.Render(label))
		}
		items[i] = MutedStyle.Render(string(rune('1'+i))+" ") + items[i]
	}
	items = append(items, "", MutedStyle.Render("Designed & Built by "+m.page.Content.Site.Profile.Name))
	return lipgloss.JoinVertical(lipgloss.Center, items...)
}

func (m Model) renderModal() string {
	proj := m.state.Selected
	idx := 0
	for i := range m.page.Content.Projects {
		if m.page.Content.Projects[i].ID == proj.ID {
			idx = i
		}
	}

	desc := proj.DisplayDescription()
	if m.markdown != nil {
		if out, err := m.markdown.Render(desc); err == nil {
			desc = strings.TrimSpace(out)
		}
	}

	var tech []string
	for _, t := range proj.TechStack {
		tech = append(tech, media.TechEmoji(t)+" "+t)
	}

	links := []string{"View Code: " + proj.GitHub}
	if proj.HasLive() {
		links = append(links, "Live Demo: "+proj.Live)
	}

	w := max(min(m.width, 100)-8, 20)
	content := lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render(proj.DisplayTitle()),
		MutedStyle.Render("▣ "+m.images[idx].Src()),
		"",
		desc,
		"",
		SectionTitleStyle.UnsetMarginBottom().Render("Technologies Used"),
		ChipStyle.Render(strings.Join(tech, "  ")),
		"",
		strings.Join(links, "\n"),
		"",
		MutedStyle.Render("esc to close"),
	)
	return ModalStyle.Width(w).Render(content)
}

// Zoom is the image scale of card i at the current scroll position
func (m Model) Zoom(i int) float64 {
	f := m.currentFrame()
	if i < 0 || i >= len(f.zooms) {
		return stacking.ImageScaleEnd
	}
	return f.zooms[i]
}

// Scale is the stacking scale of card i at the current scroll position
func (m Model) Scale(i int) float64 {
	f := m.currentFrame()
	if i < 0 || i >= len(f.scales) {
		return 1
	}
	return f.scales[i]
}
