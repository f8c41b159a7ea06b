package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/vabank-dev/vabank/internal/adapters/driven/config"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// FileName is the settings file inside the config directory.
const FileName = "config.toml"

const header = "# vabank settings. Edit by hand or with `vabank settings set <key> <value>`.\n\n"

// ConfigStore keeps settings in a TOML file. Keys are held flat
// ("sanity.dataset") and written back as tables, so the file stays
// hand-editable:
//
//	[sanity]
//	dataset = "production"
type ConfigStore struct {
	*config.Values

	// mu serialises writes to the file.
	mu   sync.Mutex
	path string
}

// NewConfigStore opens the settings file in configDir, creating the
// directory if needed. An empty configDir means ~/.vabank. A missing
// file is not an error.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating home directory: %w", err)
		}
		configDir = filepath.Join(home, ".vabank")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		Values: config.NewValues(nil),
		path:   filepath.Join(configDir, FileName),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Set stores value and rewrites the file. A value that cannot be
// encoded is not kept.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Snapshot()
	next[key] = value
	if err := s.write(next); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	s.Put(key, value)
	return nil
}

// Save rewrites the file from the current values.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(s.Snapshot())
}

// Load replaces the values with the file contents. A missing file
// clears them.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.Reset(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.Reset(config.Flatten(tree))
	return nil
}

// Path returns the settings file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// write replaces the file atomically. The file may hold the Sanity
// token, so it is only readable by the owner.
func (s *ConfigStore) write(values map[string]any) error {
	body, err := toml.Marshal(config.Nest(values))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	_, err = tmp.WriteString(header)
	if err == nil {
		_, err = tmp.Write(body)
	}
	if err == nil {
		err = tmp.Chmod(0600)
	}
	if err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
