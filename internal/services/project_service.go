package services

import (
	"errors"
	"fmt"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// ErrProjectNotFound is returned for ids absent from the gallery
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	source content.Source
}

// NewProjectService creates a new ProjectService
func NewProjectService(source content.Source) *ProjectService {
	return &ProjectService{source: source}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.source.Current().Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	projects := s.source.Current().Projects
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// Featured returns the projects carrying the featured badge
func (s *ProjectService) Featured() []models.Project {
	var out []models.Project
	for _, p := range s.source.Current().Projects {
		if p.Featured() {
			out = append(out, p)
		}
	}
	return out
}
