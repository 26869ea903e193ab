// Package skills filters the skills showcase by category.
package skills

import (
	"strings"

	"folio.dev/internal/models"
)

// All selects every category
const All = "All"

// Skill is one entry in the showcase grid
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Categories returns the filter tabs: All, then the table's categories in order
func Categories(table []models.SkillCategory) []string {
	cats := make([]string, 0, len(table)+1)
	cats = append(cats, All)
	for _, c := range table {
		cats = append(cats, c.Category)
	}
	return cats
}

// Filter returns the skills shown for category. All concatenates every
// category in table order without removing duplicates. An unknown
// category shows nothing.
func Filter(table []models.SkillCategory, category string) []Skill {
	if category == All {
		var out []Skill
		for _, c := range table {
			out = appendCategory(out, c)
		}
		return out
	}
	for _, c := range table {
		if c.Category == category {
			return appendCategory(nil, c)
		}
	}
	return []Skill{}
}

func appendCategory(out []Skill, c models.SkillCategory) []Skill {
	for _, s := range c.Skills {
		out = append(out, Skill{Name: s, Category: c.Category})
	}
	return out
}

// Names strips category metadata
func Names(list []Skill) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}

// Label is the short tab label for a category
func Label(category string) string {
	if category == "Full-Stack / Tools" {
		return "Tools"
	}
	return strings.ReplaceAll(category, " Skills", "")
}

// Valid reports whether category is All or present in table
func Valid(table []models.SkillCategory, category string) bool {
	if category == All {
		return true
	}
	for _, c := range table {
		if c.Category == category {
			return true
		}
	}
	return false
}

var icons = map[string]string{
	"HTML5":                "html5",
	"CSS3":                 "css3",
	"JavaScript (ES6+)":    "js",
	"React.js":             "react",
	"Tailwind CSS":         "tailwind",
	"Bootstrap":            "bootstrap",
	"Node.js":              "node",
	"Express.js":           "express",
	"MongoDB (Mongoose)":   "mongodb",
	"MySQL (using PHP)":    "mysql",
	"Git & GitHub":         "github",
	"npm / yarn":           "npm",
	"Postman":              "postman",
	"CRUD Operations":      "database",
	"MERN Stack":           "react",
	"XAMPP":                "database",
	"Responsive Design":    "css3",
	"API Integration":      "js",
	"Vite":                 "vite",
	"Authentication (JWT)": "js",
	"Middleware Handling":  "node",
	"REST APIs":            "server",

	"React Hooks (useState, useEffect, useContext)": "react",
}

// DefaultIcon is used for skills without a dedicated icon
const DefaultIcon = "code"

// Icon returns the icon key for a skill
func Icon(skill string) string {
	if icon, ok := icons[skill]; ok {
		return icon
	}
	return DefaultIcon
}
