package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal page.
type KeyMap struct {
	// Scrolling
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding

	// Gallery
	NextCard key.Binding
	PrevCard key.Binding
	Open     key.Binding
	Close    key.Binding

	// Skills filter
	NextTab key.Binding
	PrevTab key.Binding

	// Navigation
	Menu    key.Binding
	Section key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next project"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous project"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open project"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next skill category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous skill category"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Section: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to section"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Section, k.Open, k.NextTab, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp},
		{k.NextCard, k.PrevCard, k.Open, k.Close},
		{k.NextTab, k.PrevTab, k.Menu, k.Section},
		{k.Help, k.Quit},
	}
}
