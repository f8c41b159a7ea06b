package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vabank-dev/vabank/internal/adapters/driven/sanity"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.ContentStore   = (*Store)(nil)
	_ driven.ContentWatcher = (*Store)(nil)
)

// DebounceDelay collapses the burst of events an editor or an export
// produces into one reload.
const DebounceDelay = 500 * time.Millisecond

// Store holds the parsed contents of one export file.
type Store struct {
	path string

	mu       sync.RWMutex
	items    map[domain.ContentKind][]domain.ContentItem
	loadedAt time.Time
}

// NewStore parses the export at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: export path is empty", domain.ErrInvalidInput)
	}
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the export file path.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the export file. On failure the previous contents are kept.
func (s *Store) Reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	items, err := sanity.ParseExport(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(s.path), err)
	}

	s.mu.Lock()
	s.items = items
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.Debug("loaded export %s: %d posts, %d works, %d practices", s.path,
		len(items[domain.KindPost]), len(items[domain.KindWork]), len(items[domain.KindPractice]))
	return nil
}

// LoadedAt returns when the file was last parsed successfully.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Fetch returns a copy of the items of a kind in file order.
func (s *Store) Fetch(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ContentItem(nil), s.items[kind]...), nil
}

// FetchBySlug returns the first item of a kind with the slug.
func (s *Store) FetchBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	items, err := s.Fetch(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", kind, slug, domain.ErrNotFound)
}

// Watch reloads the file after it changes and then calls onChange.
// The parent directory is watched so that atomic replacement (write to a
// temp file, rename over) is seen. Blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	target := filepath.Clean(s.path)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug("export changed: %s (%s)", event.Name, event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(DebounceDelay, func() {
				if err := s.Reload(); err != nil {
					logger.Warn("reload export: %v", err)
					return
				}
				if onChange != nil {
					onChange()
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("export watcher: %v", err)
		}
	}
}
