package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses editor save bursts into one reload
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the store whenever its directory changes, until ctx is
// done. Reload failures are logged and the previous content is kept.
func (s *Store) Watch(ctx context.Context, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}
	notes := filepath.Join(s.dir, ProjectsDir)
	if err := watcher.Add(notes); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Not watching project notes", zap.String("dir", notes), zap.Error(err))
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("Content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Watcher error", zap.Error(err))
		case <-timer.C:
			if err := s.Reload(); err != nil {
				s.logger.Error("Content reload failed", zap.Error(err))
			}
		}
	}
}
