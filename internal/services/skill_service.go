package services

import (
	"errors"
	"fmt"

	"folio.dev/internal/content"
	"folio.dev/internal/skills"
)

// ErrUnknownCategory is returned when filtering by a category not in the table
var ErrUnknownCategory = errors.New("unknown skill category")

// SkillService serves the skills showcase
type SkillService struct {
	source content.Source
}

// NewSkillService creates a new SkillService
func NewSkillService(source content.Source) *SkillService {
	return &SkillService{source: source}
}

// Categories returns the filter tabs, All first
func (s *SkillService) Categories() []string {
	return skills.Categories(s.source.Current().Skills)
}

// Filter returns the skills shown for category; empty means All
func (s *SkillService) Filter(category string) ([]skills.Skill, error) {
	if category == "" {
		category = skills.All
	}
	table := s.source.Current().Skills
	if !skills.Valid(table, category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return skills.Filter(table, category), nil
}
