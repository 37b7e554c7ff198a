package memory

import (
	"sync"

	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds configuration values seeded with Set, standing in for
// a TOML file in tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Set stores value under key and returns the store for chaining.
func (s *ConfigStore) Set(key string, value any) *ConfigStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s
}

func (s *ConfigStore) lookup(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// GetInt returns an int or int64 value, or 0.
func (s *ConfigStore) GetInt(key string) int {
	switch v := s.lookup(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// GetBool returns a bool value, or false.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.lookup(key).(bool)
	return b
}

// GetStringSlice returns a []string value, or the strings of an []any value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	switch v := s.lookup(key).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Path reports that the store has no backing file.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
