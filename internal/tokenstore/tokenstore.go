// Package tokenstore persists the bearer token for the invoicing API.
// The token is opaque: the store never inspects, validates, or expires
// it. One token file per storage scope; the file survives restarts
// until an explicit Clear.
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken is returned by Get when no token has been stored.
var ErrNoToken = errors.New("tokenstore: no token stored")

// Store reads and writes a single token at a fixed file path.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("tokenstore: path is required")
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the conventional token location under the user's
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("tokenstore: resolving config dir: %w", err)
	}
	return filepath.Join(dir, "invoicectl", "token"), nil
}

// Get returns the stored token, or ErrNoToken when absent.
func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("tokenstore: reading token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Set writes the token, creating the parent directory if needed. The
// file is owner-readable only.
func (s *Store) Set(token string) error {
	if token == "" {
		return errors.New("tokenstore: token is required")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: writing token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: removing token: %w", err)
	}
	return nil
}
