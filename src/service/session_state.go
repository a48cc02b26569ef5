package service

import "sync"

// SessionState is the advisory "session in progress" flag shared by the
// calling service, the tool registry and the agent configuration service.
// While set, configuration mutations are rejected; reads stay allowed. The
// backend remains the actual authority and may reject conflicting writes on
// its own.
type SessionState struct {
	mu         sync.Mutex
	inProgress bool
}

// NewSessionState creates a state with no session in progress.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// Begin sets the flag and reports whether it was clear before. A false
// return means a session is already in progress and the caller must not
// start another.
func (s *SessionState) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inProgress {
		return false
	}
	s.inProgress = true
	return true
}

// End clears the flag. Ending an already idle state is a no-op.
func (s *SessionState) End() {
	s.mu.Lock()
	s.inProgress = false
	s.mu.Unlock()
}

// InProgress reports whether a calling session is active.
func (s *SessionState) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inProgress
}
