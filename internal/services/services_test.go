package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/skills"
)

func source() content.Source {
	return content.Static{Content: content.Default()}
}

func TestProjectService(t *testing.T) {
	ps := NewProjectService(source())
	assert.Len(t, ps.GetAll(), 6)

	p, err := ps.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "TextUtils", p.Title)

	_, err = ps.GetByID(42)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	featured := ps.Featured()
	require.Len(t, featured, 1)
	assert.Equal(t, "EduMedia", featured[0].Title)
}

func TestSkillService(t *testing.T) {
	ss := NewSkillService(source())
	assert.Equal(t, skills.All, ss.Categories()[0])

	all, err := ss.Filter("")
	require.NoError(t, err)
	assert.Len(t, all, 23)

	backend, err := ss.Filter("Backend Skills")
	require.NoError(t, err)
	assert.Equal(t, "Node.js", backend[0].Name)

	_, err = ss.Filter("Cooking")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPageServiceState(t *testing.T) {
	svc := NewPageService(source())
	p := svc.Page()

	st := svc.State(p, PageQuery{Category: "Full-Stack / Tools", ProjectID: 5, Section: "projects"})
	assert.Equal(t, "Full-Stack / Tools", st.Filter)
	require.NotNil(t, st.Selected)
	assert.Equal(t, "News App (React)", st.Selected.Title)
	assert.Equal(t, "projects", st.Active())

	st = svc.State(p, PageQuery{Category: "bogus", ProjectID: 77, Section: "blog"})
	assert.Equal(t, skills.All, st.Filter)
	assert.Nil(t, st.Selected)
	assert.Equal(t, "home", st.Active())
}

func TestPageServiceReplay(t *testing.T) {
	svc := NewPageService(source())
	st := svc.Replay([]scrollspy.Event{
		{Anchor: "home", Intersecting: true},
		{Anchor: "skills", Intersecting: true},
		{Anchor: "skills", Intersecting: false},
	})
	assert.Equal(t, "skills", st.Active)

	assert.Equal(t, "home", svc.Replay(nil).Active)

	// no section renders for experience
	st = svc.Replay([]scrollspy.Event{{Anchor: "experience", Intersecting: true}})
	assert.Equal(t, "home", st.Active)

	p := svc.Page()
	assert.Equal(t, "home", svc.State(p, PageQuery{Section: "experience"}).Active())
}

func TestPageServiceCardScales(t *testing.T) {
	svc := NewPageService(source())
	scales := svc.CardScales(1)
	require.Len(t, scales, 6)
	assert.Equal(t, 1-6*0.05, scales[0])
	assert.Equal(t, 0.95, scales[5])
}
