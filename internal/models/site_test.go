package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectNormalize(t *testing.T) {
	p := Project{
		ID:    1,
		Title: "EduMedia",
		Live:  "https://studymedia-online.netlify.app/ ",
	}
	p.Normalize()

	assert.Equal(t, "https://studymedia-online.netlify.app/", p.Live)
	assert.Equal(t, StatusNormal, p.Status)
	assert.NotNil(t, p.TechStack)
	assert.True(t, p.HasLive())
	assert.False(t, p.Featured())
}

func TestProjectDisplayDefaults(t *testing.T) {
	var p Project

	assert.Equal(t, "Untitled Project", p.DisplayTitle())
	assert.Equal(t, "No description provided.", p.DisplayDescription())
	assert.Equal(t, "—", p.DisplayYear())
	assert.Equal(t, "New", p.DisplayStars())
	assert.False(t, p.HasLive())

	p.Year, p.Stars = "2024", "12"
	assert.Equal(t, "2024", p.DisplayYear())
	assert.Equal(t, "12", p.DisplayStars())
}

func TestSiteAnchors(t *testing.T) {
	s := Site{Nav: []NavLink{
		{Name: "Home", Href: "#home"},
		{Name: "Skills", Href: "#skills"},
		{Name: "Projects", Href: "#projects"},
	}}

	assert.Equal(t, []string{"home", "skills", "projects"}, s.Anchors())
}
