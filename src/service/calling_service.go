package service

import (
	"context"
	"log/slog"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/queue"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/repository"
)

// Dialer is the backend surface that actually places calls.
type Dialer interface {
	StartOutboundCall(ctx context.Context, phoneNumber string, fileIDs []string) (string, error)
	StartInboundAgent(ctx context.Context, fileIDs []string) (string, error)
	StopCalling(ctx context.Context) error
}

// CallingService drives outbound dialing from the queue. Starting a call is
// optimistic: the entry flips to calling before the backend answers and rolls
// back to pending when the request fails, so a failed dial stays retryable.
type CallingService struct {
	queue    *queue.Queue
	dialer   Dialer
	sessions *SessionState
	repo     *repository.CallSessionRepository
}

// NewCallingService creates a calling service. repo may be nil when no
// database is configured; session rows are then simply not recorded.
func NewCallingService(q *queue.Queue, dialer Dialer, sessions *SessionState, repo *repository.CallSessionRepository) *CallingService {
	return &CallingService{
		queue:    q,
		dialer:   dialer,
		sessions: sessions,
		repo:     repo,
	}
}

// Queue exposes the underlying state container.
func (s *CallingService) Queue() *queue.Queue {
	return s.queue
}

// InProgress reports whether a calling session is active.
func (s *CallingService) InProgress() bool {
	return s.sessions.InProgress()
}

// StartNext dials the first pending entry in queue order. It returns
// ErrQueueEmpty without any state change when nothing is pending, and
// ErrSessionInProgress when a session is already active — the reentrancy
// guard that keeps the at-most-one-calling invariant even under rapid
// repeated triggers.
func (s *CallingService) StartNext(ctx context.Context) (models.QueueEntry, string, error) {
	entry, ok := s.queue.NextPending()
	if !ok {
		return models.QueueEntry{}, "", models.ErrQueueEmpty
	}

	if !s.sessions.Begin() {
		return models.QueueEntry{}, "", models.ErrSessionInProgress
	}

	if err := s.queue.MarkCalling(entry.ID); err != nil {
		s.sessions.End()
		return models.QueueEntry{}, "", err
	}

	sessionID, err := s.dialer.StartOutboundCall(ctx, entry.Phone, nil)
	if err != nil {
		// Roll back so the entry re-enters the pending pool.
		if rollbackErr := s.queue.MarkPending(entry.ID); rollbackErr != nil {
			slog.Error("Failed to roll back queue entry after dial failure",
				"entry_id", entry.ID, "error", rollbackErr)
		}
		s.sessions.End()
		slog.Error("Outbound call failed", "entry_id", entry.ID, "phone", entry.Phone, "error", err)
		return models.QueueEntry{}, "", err
	}

	if s.repo != nil {
		if _, repoErr := s.repo.CreateSession(ctx, sessionID, entry.Phone); repoErr != nil {
			// The call is already running; losing the audit row is not
			// a reason to abort it.
			slog.Error("Failed to record call session", "session_id", sessionID, "error", repoErr)
		}
	}

	entry.Status = models.EntryCalling
	slog.Info("Outbound call initiated",
		"entry_id", entry.ID,
		"phone", entry.Phone,
		"session_id", sessionID)
	return entry, sessionID, nil
}

// EndSession transitions every calling entry to completed and clears the
// session-in-progress flag. This is the only path that marks a call
// finished; the gateway has no independent confirmation of completion
// besides the poller's notifications.
func (s *CallingService) EndSession(ctx context.Context) int {
	completed := s.queue.CompleteCalling()
	s.sessions.End()

	if s.repo != nil {
		if _, err := s.repo.CompleteActiveSessions(ctx); err != nil {
			slog.Error("Failed to complete call session rows", "error", err)
		}
	}

	slog.Info("Calling session ended", "completed_entries", completed)
	return completed
}

// ActiveSession returns the IN_PROGRESS call session row, or ErrNoCallSession
// when none exists or no database is configured. The row is the durable view
// of the in-memory flag and survives a gateway restart.
func (s *CallingService) ActiveSession(ctx context.Context) (*models.CallSession, error) {
	if s.repo == nil {
		return nil, models.ErrNoCallSession
	}

	session, err := s.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, models.ErrNoCallSession
	}
	return session, nil
}

// StartInboundAgent activates the inbound assistant.
func (s *CallingService) StartInboundAgent(ctx context.Context) (string, error) {
	assistantID, err := s.dialer.StartInboundAgent(ctx, nil)
	if err != nil {
		return "", err
	}
	slog.Info("Inbound agent activated", "assistant_id", assistantID)
	return assistantID, nil
}

// StopCalling asks the backend to stop the active calling agent.
func (s *CallingService) StopCalling(ctx context.Context) error {
	return s.dialer.StopCalling(ctx)
}
