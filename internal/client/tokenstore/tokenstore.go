// Package tokenstore persists the bearer token between client runs.
// The token is a single opaque string in a file under the user config
// directory; it survives process restarts until an explicit logout.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fileName = "token"

// Store keeps the token cached in memory and mirrored to disk. It also
// satisfies api.TokenSource, so the HTTP client reads the current value
// on every outgoing request.
type Store struct {
	path  string
	token string
}

// Open loads the persisted token, if any, from dir. A missing file is not
// an error; it simply means no session is stored.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	s := &Store{path: filepath.Join(dir, fileName)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// DefaultDir returns the per-user config directory for the client.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, "ctibook"), nil
}

// Token returns the current token, or "" when no session is stored.
func (s *Store) Token() string {
	return s.token
}

// Save persists the token to disk and updates the in-memory copy.
func (s *Store) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the persisted token. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
