// Package session persists the authentication token between console runs,
// standing in for a browser's local storage.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store keeps the bearer token in memory and mirrors it to a file readable
// only by the current user.
type Store struct {
	path  string
	mu    sync.RWMutex
	token string
}

// NewStore builds a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save records the token and persists it to disk.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	s.token = token
	return nil
}

// Load returns the current token, reading it from disk on first use. An
// absent file yields an empty token, not an error.
func (s *Store) Load() (string, error) {
	s.mu.RLock()
	if s.token != "" {
		defer s.mu.RUnlock()
		return s.token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	s.token = strings.TrimSpace(string(data))
	return s.token, nil
}

// Clear forgets the token and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
