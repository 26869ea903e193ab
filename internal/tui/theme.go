package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorInk    = lipgloss.AdaptiveColor{Dark: "#F5F5F4", Light: "#1C1917"}
	ColorAccent = lipgloss.AdaptiveColor{Dark: "#34D399", Light: "#059669"}
	ColorMuted  = lipgloss.AdaptiveColor{Dark: "#A8A29E", Light: "#78716C"}
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#60A5FA", Light: "#2563EB"}
	ColorGold   = lipgloss.AdaptiveColor{Dark: "#FBBF24", Light: "#D97706"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#44403C", Light: "#E7E5E4"}
	ColorNight  = lipgloss.AdaptiveColor{Dark: "#0F172A", Light: "#F8FAFC"}
)

// LogoStyle renders the name mark in the header.
var LogoStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInk)

// DotStyle is the accent dot after the logo.
var DotStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

// HeaderStyle is the header bar at the top of the page. Both header
// styles are two lines tall.
var HeaderStyle = lipgloss.NewStyle().Padding(0, 1, 1, 1)

// ScrolledHeaderStyle replaces HeaderStyle once the page has scrolled.
var ScrolledHeaderStyle = HeaderStyle.
	PaddingBottom(0).
	Border(lipgloss.NormalBorder(), false, false, true, false).
	BorderForeground(ColorSubtle)

// NavStyle is an inactive navigation pill.
var NavStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

// ActiveNavStyle is the highlighted navigation pill.
var ActiveNavStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorNight).
	Background(ColorInk).
	Padding(0, 1)

// SectionTitleStyle is used for section headings.
var SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInk).MarginBottom(1)

// AccentStyle highlights a word inside a heading.
var AccentStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

// TabStyle and ActiveTabStyle render the skills filter.
var (
	TabStyle       = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorNight).Background(ColorInk).Padding(0, 1)
)

// SkillStyle is one cell of the skills grid.
var SkillStyle = lipgloss.NewStyle().Foreground(ColorInk).PaddingRight(2)

// CardStyle wraps a project card.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorSubtle).
	Padding(0, 1)

// FocusedCardStyle marks the card under the cursor.
var FocusedCardStyle = CardStyle.BorderForeground(ColorBlue)

// FeaturedStyle is the featured badge.
var FeaturedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGold)

// ChipStyle renders a technology tag.
var ChipStyle = lipgloss.NewStyle().Foreground(ColorBlue)

// MutedStyle is used for secondary text.
var MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

// ModalStyle frames the project detail view.
var ModalStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBlue).
	Padding(1, 2)

// FooterStyle is the contact section.
var FooterStyle = lipgloss.NewStyle().Foreground(ColorInk).Align(lipgloss.Center)
