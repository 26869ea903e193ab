package skills

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"folio.dev/internal/models"
)

var table = []models.SkillCategory{
	{Category: "Frontend Skills", Skills: []string{"HTML5", "CSS3", "React.js"}},
	{Category: "Backend Skills", Skills: []string{"Node.js", "Express.js"}},
	{Category: "Full-Stack / Tools", Skills: []string{"Git & GitHub", "React.js"}},
}

func TestFilterAllConcatenates(t *testing.T) {
	want := []string{"HTML5", "CSS3", "React.js", "Node.js", "Express.js", "Git & GitHub", "React.js"}
	if diff := cmp.Diff(want, Names(Filter(table, All))); diff != "" {
		t.Errorf("Filter(All) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAllKeepsCategory(t *testing.T) {
	got := Filter(table, All)
	assert.Equal(t, Skill{Name: "Node.js", Category: "Backend Skills"}, got[3])
}

func TestFilterNamedCategory(t *testing.T) {
	want := []string{"Node.js", "Express.js"}
	if diff := cmp.Diff(want, Names(Filter(table, "Backend Skills"))); diff != "" {
		t.Errorf("Filter(Backend) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterUnknown(t *testing.T) {
	assert.Empty(t, Filter(table, "Design"))
	assert.False(t, Valid(table, "Design"))
	assert.True(t, Valid(table, All))
	assert.True(t, Valid(table, "Backend Skills"))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Frontend Skills", "Backend Skills", "Full-Stack / Tools"}, Categories(table))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Tools", Label("Full-Stack / Tools"))
	assert.Equal(t, "Frontend", Label("Frontend Skills"))
	assert.Equal(t, "All", Label(All))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "react", Icon("React.js"))
	assert.Equal(t, DefaultIcon, Icon("COBOL"))
}
