package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// SessionStore persists the logged-in user session as a JSON file at a
// well-known path, the server-side counterpart of the browser's
// local-storage key. Absent or malformed data is treated as "logged out"
// and never as an error.
type SessionStore struct {
	mu   sync.RWMutex
	path string
}

// NewSessionStore creates a store backed by the file at path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the persisted session. It returns nil when no session is stored
// or when the stored data cannot be parsed; a corrupt file must not take the
// dashboard down.
func (s *SessionStore) Load() *models.UserSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var session models.UserSession
	if err := json.Unmarshal(data, &session); err != nil {
		slog.Warn("Stored session is malformed, treating as logged out",
			"path", s.path, "error", err)
		return nil
	}

	return &session
}

// Save serializes and persists the session, replacing any previous one.
func (s *SessionStore) Save(session *models.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an already absent session is
// not an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
