package memory

import (
	"github.com/vabank-dev/vabank/internal/adapters/driven/config"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in memory only. Used by tests.
type ConfigStore struct {
	*config.Values
}

// NewConfigStore creates a store holding seed, which may be nil.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	merged := make(map[string]any)
	for _, m := range seed {
		for k, v := range m {
			merged[k] = v
		}
	}
	return &ConfigStore{Values: config.NewValues(merged)}
}

// Set stores a value.
func (s *ConfigStore) Set(key string, value any) error {
	s.Put(key, value)
	return nil
}

// Save does nothing.
func (s *ConfigStore) Save() error { return nil }

// Load does nothing.
func (s *ConfigStore) Load() error { return nil }

// Path returns ":memory:".
func (s *ConfigStore) Path() string { return ":memory:" }
