package models

import "strings"

// NavLink is an entry in the header navigation. Order defines display
// and scroll order.
type NavLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Anchor returns the section id the link points at
func (l NavLink) Anchor() string {
	return strings.TrimPrefix(l.Href, "#")
}

// SocialLink is a footer link
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// Profile holds the hero section copy
type Profile struct {
	Name    string   `json:"name" yaml:"name"`
	Tagline string   `json:"tagline" yaml:"tagline"`
	Intro   string   `json:"intro" yaml:"intro"`
	Badges  []string `json:"badges" yaml:"badges"`
	Image   string   `json:"image" yaml:"image"`
	Logo    string   `json:"logo" yaml:"logo"`
}

// Site holds the page chrome: hero, navigation and footer
type Site struct {
	Profile   Profile      `json:"profile" yaml:"profile"`
	Nav       []NavLink    `json:"nav" yaml:"nav"`
	Social    []SocialLink `json:"social" yaml:"social"`
	Copyright string       `json:"copyright" yaml:"copyright"`
}

// Anchors returns the section ids of the navigation, in order
func (s Site) Anchors() []string {
	anchors := make([]string, 0, len(s.Nav))
	for _, l := range s.Nav {
		anchors = append(anchors, l.Anchor())
	}
	return anchors
}

// Content is everything the page renders
type Content struct {
	Site     Site            `json:"site"`
	Skills   []SkillCategory `json:"skills"`
	Projects []Project       `json:"projects"`
}
