package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
	"folio.dev/internal/media"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/skills"
)

func newTestModel(t *testing.T, imageDir string) Model {
	t.Helper()
	m := New(content.Default(), Options{
		ScrollSpy: scrollspy.DefaultOptions(),
		ImageDir:  imageDir,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	assert.Equal(t, "home", m.State().Active())
	assert.False(t, m.State().Scrolled)
	assert.Equal(t, skills.All, m.State().Filter)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Hi, I'm")
}

func TestViewBeforeResize(t *testing.T) {
	m := New(content.Default(), Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestNavigateToSection(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m = press(t, m, runes("3"))
	assert.Equal(t, "projects", m.State().Active())
	assert.True(t, m.State().Scrolled)

	m = press(t, m, runes("5"))
	assert.Equal(t, "contact", m.State().Active())
}

func TestNavigateToMissingSection(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	// experience has no section in the terminal
	m = press(t, m, runes("4"))
	assert.Equal(t, "home", m.State().Active())
}

func TestScrollingMovesActiveSection(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	for i := 0; i < 20; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.NotEqual(t, "home", m.State().Active())
	assert.True(t, m.State().Scrolled)
}

func TestScrollingUpNeverLeavesActiveEmpty(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m = press(t, m, runes("3"))
	for i := 0; i < 200; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.NotEmpty(t, m.State().Active())
	assert.False(t, m.State().Scrolled)
}

func TestOpenAndCloseProject(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State().Selected)
	assert.Equal(t, "EduMedia", m.State().Selected.Title)
	assert.Contains(t, m.View(), "Technologies Used")

	// scrolling is disabled while the modal is open
	m = press(t, m, runes("3"))
	assert.Equal(t, "home", m.State().Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.State().Selected)
}

func TestFocusCard(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m = press(t, m, runes("l"), runes("l"))
	assert.Equal(t, 2, m.Focus())
	assert.Equal(t, "projects", m.State().Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State().Selected)
	assert.Equal(t, content.Default().Projects[2].ID, m.State().Selected.ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	for i := 0; i < 10; i++ {
		m = press(t, m, runes("h"))
	}
	assert.Equal(t, 0, m.Focus())
}

func TestCycleCategory(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	cats := skills.Categories(content.Default().Skills)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, cats[1], m.State().Filter)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, cats[len(cats)-1], m.State().Filter)
}

func TestMenu(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m = press(t, m, runes("m"))
	assert.True(t, m.State().MenuOpen)
	assert.Contains(t, m.View(), "Designed & Built by")

	m = press(t, m, runes("3"))
	assert.False(t, m.State().MenuOpen)
	assert.Equal(t, "projects", m.State().Active())
}

func TestTypingTicks(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	full := content.Default().Site.Profile.Tagline

	for i := 0; i < len([]rune(full))+5; i++ {
		next, _ := m.Update(typeTickMsg{})
		m = next.(Model)
	}
	assert.True(t, m.State().Typed.Done())
	assert.Equal(t, full, m.State().Typed.Text())

	_, cmd := m.Update(typeTickMsg{})
	assert.Nil(t, cmd)
}

func TestMissingImagesFallBack(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	for i, src := range m.images {
		assert.Equal(t, media.Placeholder, src.Src(), "project %d", i)
		assert.True(t, src.Failed())
	}
}

func TestBundledImagesLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "money.jpeg"), []byte("img"), 0o644))

	m := newTestModel(t, dir)
	assert.Equal(t, "/images/money.jpeg", m.images[1].Src())
	assert.False(t, m.images[1].Failed())
	assert.Equal(t, media.Placeholder, m.images[0].Src())
}

func TestCardScalesFollowScroll(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	n := len(content.Default().Projects)

	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, m.Scale(i))
	}

	m = press(t, m, runes("5"))
	assert.Less(t, m.Scale(0), 1.0)
	assert.InDelta(t, 1-float64(n)*0.05, m.Scale(0), 1e-9)
	assert.Equal(t, 1.0, m.Zoom(0))
	assert.Equal(t, 1.0, m.Scale(-1))
}

func TestHeaderShowsActivePill(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	header := m.renderHeader()
	assert.Equal(t, 2, strings.Count(header, "\n")+1)

	m = press(t, m, runes("3"))
	assert.Equal(t, 2, strings.Count(m.renderHeader(), "\n")+1)
}
