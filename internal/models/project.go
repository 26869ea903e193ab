package models

import "strings"

// ProjectStatus marks how prominently a project is shown in the gallery
type ProjectStatus string

const (
	StatusNormal   ProjectStatus = "normal"
	StatusFeatured ProjectStatus = "featured"
)

// Project represents a portfolio project
type Project struct {
	ID          int           `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	TechStack   []string      `json:"techStack" yaml:"techStack"`
	GitHub      string        `json:"github" yaml:"github"`
	Live        string        `json:"live,omitempty" yaml:"live,omitempty"`
	Image       string        `json:"image" yaml:"image"`
	Status      ProjectStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Year        string        `json:"year,omitempty" yaml:"year,omitempty"`
	Stars       string        `json:"stars,omitempty" yaml:"stars,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Featured reports whether the project carries the featured badge
func (p Project) Featured() bool {
	return p.Status == StatusFeatured
}

// HasLive reports whether a live demo link should be shown
func (p Project) HasLive() bool {
	return strings.TrimSpace(p.Live) != ""
}

// DisplayTitle returns the title, or a stand-in when none was supplied
func (p Project) DisplayTitle() string {
	if p.Title == "" {
		return "Untitled Project"
	}
	return p.Title
}

// DisplayDescription returns the description, or a stand-in when none was supplied
func (p Project) DisplayDescription() string {
	if p.Description == "" {
		return "No description provided."
	}
	return p.Description
}

// DisplayYear returns the year or a dash
func (p Project) DisplayYear() string {
	if p.Year == "" {
		return "—"
	}
	return p.Year
}

// DisplayStars returns the star count or "New"
func (p Project) DisplayStars() string {
	if p.Stars == "" {
		return "New"
	}
	return p.Stars
}

// Normalize trims author-supplied URLs and fills defaults for optional fields.
// It never rejects a project.
func (p *Project) Normalize() {
	p.GitHub = strings.TrimSpace(p.GitHub)
	p.Live = strings.TrimSpace(p.Live)
	p.Image = strings.TrimSpace(p.Image)
	if p.Status == "" {
		p.Status = StatusNormal
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}
