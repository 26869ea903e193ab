package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio.dev/internal/intersect"
	"folio.dev/internal/media"
	"folio.dev/internal/skills"
	"folio.dev/internal/stacking"
)

// sections are the page regions the terminal renders, in page order.
// Nav anchors outside this set have no section and are never observed.
var sections = []string{"home", "skills", "projects", "contact"}

func rendered(anchor string) bool {
	for _, s := range sections {
		if s == anchor {
			return true
		}
	}
	return false
}

const (
	// cardLines is the fixed body height of a project card; cards keep
	// their height while they shrink so section spans stay put.
	cardLines = 6
	// cardGap is the blank space between stacked cards
	cardGap = 1
	// maxCardWidth caps card width on wide terminals
	maxCardWidth = 76
)

// layout is one rendering of the scrollable document
type layout struct {
	doc      string
	spans    map[string]intersect.Span
	cardTops []int
}

// frame holds the scroll-driven values of one rendering
type frame struct {
	scales []float64
	zooms  []float64
}

func (m Model) contentWidth() int {
	return max(m.width-2, 20)
}

func (m Model) renderHero() string {
	p := m.page.Content.Site.Profile
	w := m.contentWidth()

	var chips []string
	for _, b := range p.Badges {
		chips = append(chips, ChipStyle.Render("["+b+"]"))
	}

	lines := []string{
		"",
		MutedStyle.Render("Hi, I'm"),
		SectionTitleStyle.UnsetMarginBottom().Render(p.Name),
		"",
		AccentStyle.Render(m.state.Typed.Text()) + MutedStyle.Render("|"),
		"",
		strings.Join(chips, " "),
		"",
		lipgloss.NewStyle().Width(w).Render(p.Intro),
		"",
		MutedStyle.Render(fmt.Sprintf("→ View Projects (%d)", len(m.page.Content.Projects))),
		"",
	}
	// the hero fills the first screen
	return lipgloss.NewStyle().Height(m.viewport.Height).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSkills() string {
	c := m.page.Content
	w := m.contentWidth()

	var tabs []string
	for _, cat := range skills.Categories(c.Skills) {
		label := skills.Label(cat)
		if cat == m.state.Filter {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}

	var cells []string
	for _, s := range m.page.VisibleSkills(m.state) {
		cells = append(cells, SkillStyle.Render("• "+s.Name))
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top, SectionTitleStyle.UnsetMarginBottom().Render("Technical "), AccentStyle.Render("Arsenal"))
	grid := lipgloss.NewStyle().Width(w).Render(strings.Join(cells, " "))
	return strings.Join([]string{
		title,
		"",
		lipgloss.NewStyle().Width(w).Render(strings.Join(tabs, " ")),
		"",
		grid,
		"",
	}, "\n")
}

func (m Model) renderCard(i int, scale, zoom float64) string {
	proj := m.page.Content.Projects[i]
	base := min(m.contentWidth(), maxCardWidth)
	w := max(int(float64(base)*scale), 16)

	title := SectionTitleStyle.UnsetMarginBottom().Render(proj.DisplayTitle())
	if proj.Featured() {
		title += " " + FeaturedStyle.Render("★ Featured")
	}

	var emoji []string
	for _, t := range media.CardBadges(proj.TechStack) {
		emoji = append(emoji, media.TechEmoji(t))
	}
	image := MutedStyle.Render(fmt.Sprintf("▣ %s  ×%.2f  %s", m.images[i].Src(), zoom, strings.Join(emoji, " ")))

	info := MutedStyle.Render(fmt.Sprintf("📅 %s  🔧 %d Technologies  ⭐ %s",
		proj.DisplayYear(), len(proj.TechStack), proj.DisplayStars()))

	links := "Code: " + proj.GitHub
	if proj.HasLive() {
		links += "  Demo: " + proj.Live
	}

	body := strings.Join([]string{
		title,
		image,
		info,
		proj.DisplayDescription(),
		ChipStyle.Render(strings.Join(proj.TechStack, " · ")),
		MutedStyle.Render(links),
	}, "\n")

	inner := lipgloss.NewStyle().
		Width(w - 4).
		Height(cardLines).
		MaxHeight(cardLines).
		MaxWidth(w - 4).
		Render(body)

	style := CardStyle
	if i == m.focus {
		style = FocusedCardStyle
	}
	return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, style.Render(inner))
}

func (m Model) renderProjects(f frame) (string, []int) {
	n := len(m.page.Content.Projects)
	head := []string{
		MutedStyle.Render(fmt.Sprintf("%d Innovations", n)),
		SectionTitleStyle.UnsetMarginBottom().Render("Featured Projects"),
		"",
	}

	out := strings.Join(head, "\n")
	top := lipgloss.Height(out)
	tops := make([]int, n)
	for i := 0; i < n; i++ {
		tops[i] = top
		card := m.renderCard(i, f.scales[i], f.zooms[i])
		out += "\n" + card + strings.Repeat("\n", cardGap)
		top += lipgloss.Height(card) + cardGap
	}
	return out, tops
}

func (m Model) renderFooter() string {
	site := m.page.Content.Site
	var links []string
	for _, s := range site.Social {
		links = append(links, s.Label+": "+s.Href)
	}
	w := m.contentWidth()
	return FooterStyle.Width(w).Render(strings.Join([]string{
		"",
		SectionTitleStyle.UnsetMarginBottom().Render("Let's Connect"),
		"Feel free to reach out for collaborations or just a friendly hello",
		"",
		strings.Join(links, "\n"),
		"",
		MutedStyle.Render(site.Copyright),
		"",
	}, "\n"))
}

// buildLayout renders the document and measures each section
func (m Model) buildLayout(f frame) layout {
	projects, tops := m.renderProjects(f)
	blocks := map[string]string{
		"home":     m.renderHero(),
		"skills":   m.renderSkills(),
		"projects": projects,
		"contact":  m.renderFooter(),
	}

	l := layout{spans: make(map[string]intersect.Span, len(sections)), cardTops: tops}
	var parts []string
	top := 0
	for _, anchor := range sections {
		block := blocks[anchor]
		h := lipgloss.Height(block)
		l.spans[anchor] = intersect.Span{Top: float64(top), Height: float64(h)}
		parts = append(parts, block)
		top += h
	}
	l.doc = strings.Join(parts, "\n")
	return l
}

// currentFrame derives card scales and image zoom from the scroll position
func (m Model) currentFrame() frame {
	n := len(m.page.Content.Projects)
	f := frame{scales: make([]float64, n), zooms: make([]float64, n)}
	vh := float64(m.viewport.Height)
	span, ok := m.spans["projects"]
	if !ok {
		for i := range f.scales {
			f.scales[i] = 1
			f.zooms[i] = stacking.ImageScaleStart
		}
		return f
	}

	offset := float64(m.viewport.YOffset)
	p := stacking.ScrollFraction(offset-span.Top, span.Height, vh)
	for i := 0; i < n; i++ {
		f.scales[i] = stacking.CardScale(p, i, n)
		cardTop := span.Top + float64(m.cardTopAt(i)) - offset
		f.zooms[i] = stacking.ImageScale(stacking.LocalProgress(cardTop, vh))
	}
	return f
}

func (m Model) cardTopAt(i int) int {
	if i < len(m.cardTops) {
		return m.cardTops[i]
	}
	return 0
}
