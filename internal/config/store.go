package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes typed values as JSON files in the launcher's
// state directory. Keys are file names, values are whole-file documents.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the default state directory
func NewStore() *Store {
	return NewStoreAt(defaultStateDir())
}

// NewStoreAt creates a store rooted at a specific directory
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory backing the store
func (s *Store) Dir() string {
	return s.dir
}

// ReadType reads the value stored under key into a value of type T
func ReadType[T any](s *Store, key string) (T, error) {
	var value T

	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return value, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to parse %s: %w", key, err)
	}

	return value, nil
}

// WriteType writes value as JSON under key, creating the directory if needed
func WriteType[T any](s *Store, key string, value T) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// defaultStateDir resolves $XDG_STATE_HOME/quicklaunch, falling back to
// ~/.local/state/quicklaunch
func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "quicklaunch")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".local", "state", "quicklaunch")
}
