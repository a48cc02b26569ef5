package models

import "errors"

// Domain-level sentinel errors for business logic
// These errors should not contain HTTP-specific information

var (
	// ErrQueueEmpty indicates that no queue entry is pending
	ErrQueueEmpty = errors.New("no pending entries in the calling queue")

	// ErrEntryNotFound indicates that a queue entry with the given ID does not exist
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrAlreadyCalling indicates that another entry is already in the calling state
	ErrAlreadyCalling = errors.New("a call is already in flight")

	// ErrSessionInProgress indicates that a calling session is active and
	// configuration mutations are rejected
	ErrSessionInProgress = errors.New("session in progress: modifications are not allowed")

	// ErrToolNotFound indicates that a tool with the given ID is not in the cache
	ErrToolNotFound = errors.New("tool not found")

	// ErrToggleInFlight indicates that a toggle request for the tool is already outstanding
	ErrToggleInFlight = errors.New("toggle already in flight for this tool")

	// ErrNoCallSession indicates that no calling session row exists
	ErrNoCallSession = errors.New("call session not found")
)
