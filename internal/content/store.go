package content

import (
	"sync/atomic"

	"go.uber.org/zap"

	"folio.dev/internal/models"
)

// Source hands out the current content
type Source interface {
	Current() *models.Content
}

// Static is a Source that never changes
type Static struct {
	Content *models.Content
}

// Current returns the fixed content
func (s Static) Current() *models.Content {
	return s.Content
}

// Store keeps the content loaded from a directory. Reload swaps the whole
// value at once, so readers see either the old or the new copy.
type Store struct {
	dir     string
	logger  *zap.Logger
	current atomic.Pointer[models.Content]
}

// NewStore loads dir
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	s := &Store{dir: dir, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir is the content directory
func (s *Store) Dir() string {
	return s.dir
}

// Current returns the latest successfully loaded content
func (s *Store) Current() *models.Content {
	return s.current.Load()
}

// Reload re-reads the directory. On error the previous content stays.
func (s *Store) Reload() error {
	c, err := Load(s.dir)
	if err != nil {
		return err
	}
	s.current.Store(c)
	s.logger.Info("Content loaded",
		zap.String("dir", s.dir),
		zap.Int("projects", len(c.Projects)),
		zap.Int("skill_categories", len(c.Skills)))
	return nil
}
