/*
settings is a persistent key-value store with per-key defaults, backed
by a JSON file on disk. Reads never fail: an absent or malformed file
silently yields the registered defaults.
*/
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store holds persisted settings merged over registered defaults.
type Store struct {
	mu       sync.RWMutex
	path     string
	defaults map[string]any
	data     map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a store at the given file path with the given defaults.
// If the file exists and holds a valid JSON object its contents are
// loaded; a missing or malformed file starts the store empty so every
// key reads its default.
func New(path string, defaults map[string]any) *Store {
	s := &Store{
		path:     path,
		defaults: defaults,
		data:     make(map[string]any),
	}

	// Malformed persisted data falls back to defaults, never errors
	if data, err := os.ReadFile(path); err == nil {
		var loaded map[string]any
		if json.Unmarshal(data, &loaded) == nil && loaded != nil {
			s.data = loaded
		}
	}

	return s
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get retrieves a value by key, falling back to the registered default
// and then to nil.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, exists := s.data[key]; exists {
		return v
	}
	return s.defaults[key]
}

// GetString retrieves a string value by key. A value of any other type
// reads as the default, or the empty string.
func (s *Store) GetString(key string) string {
	if v, ok := s.Get(key).(string); ok {
		return v
	}
	v, _ := s.defaults[key].(string)
	return v
}

// GetBool retrieves a boolean value by key. A value of any other type
// reads as the default, or false.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.Get(key).(bool); ok {
		return v
	}
	v, _ := s.defaults[key].(bool)
	return v
}

// Set stores a value by key and persists the store to disk. Pass nil to
// remove a key, reverting reads to the default.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		delete(s.data, key)
	} else {
		s.data[key] = value
	}
	return s.save()
}

// Keys returns the keys of all persisted values.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// save writes the store to disk as indented JSON, creating parent
// directories as needed.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, filePerm)
}
