// Package client is a small SDK for programs that call the Pulse CMS API on
// behalf of a signed-in user. It keeps the issued token in a single named
// slot durable across process restarts, attaches it to outgoing requests,
// and mirrors the server's portal permission table for navigation decisions.
package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists the session token in a single slot backed by a file. The
// file is the sole source of truth for "is a session present".
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a Store writing to path. The parent directory is created
// on first Persist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Persist writes the token to the slot, replacing any previous value.
func (s *Store) Persist(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Retrieve returns the stored token, or ok=false when no session is present.
func (s *Store) Retrieve() (token string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token = strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
