package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/db"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// CallSessionRepository logs the lifecycle of outbound calling sessions. The
// queue itself stays in memory; these rows are the durable audit trail of
// which numbers were dialed and when the session finished.
type CallSessionRepository struct {
	db *db.DB
}

// NewCallSessionRepository creates a new call session repository
func NewCallSessionRepository(database *db.DB) *CallSessionRepository {
	return &CallSessionRepository{
		db: database,
	}
}

// CreateSession records a new IN_PROGRESS calling session. The session id
// comes from the backend's start-outbound-calling response.
func (r *CallSessionRepository) CreateSession(ctx context.Context, sessionID, phoneNumber string) (*models.CallSession, error) {
	query := `
		INSERT INTO call_sessions (session_id, phone_number, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING session_id, phone_number, status, created_at, completed_at
	`

	var session models.CallSession
	err := r.db.GetConnection().QueryRowContext(
		ctx,
		query,
		sessionID,
		phoneNumber,
		models.StatusInProgress,
		time.Now(),
	).Scan(
		&session.SessionID,
		&session.PhoneNumber,
		&session.Status,
		&session.CreatedAt,
		&session.CompletedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create call session: %w", err)
	}

	slog.Info("Recorded new calling session",
		"session_id", session.SessionID,
		"phone_number", session.PhoneNumber)

	return &session, nil
}

// CompleteActiveSessions marks every IN_PROGRESS session COMPLETED and
// returns how many rows were updated. With the at-most-one in-flight
// invariant this is normally a single row.
func (r *CallSessionRepository) CompleteActiveSessions(ctx context.Context) (int64, error) {
	query := `
		UPDATE call_sessions
		SET status = $1, completed_at = $2
		WHERE status = $3
	`

	result, err := r.db.GetConnection().ExecContext(ctx, query,
		models.StatusCompleted, time.Now(), models.StatusInProgress)
	if err != nil {
		return 0, fmt.Errorf("failed to complete call sessions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	slog.Info("Completed active calling sessions", "count", rowsAffected)
	return rowsAffected, nil
}

// GetActiveSession retrieves the most recent IN_PROGRESS session, or nil when
// no session is active.
func (r *CallSessionRepository) GetActiveSession(ctx context.Context) (*models.CallSession, error) {
	query := `
		SELECT session_id, phone_number, status, created_at, completed_at
		FROM call_sessions
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var session models.CallSession
	err := r.db.GetConnection().QueryRowContext(ctx, query, models.StatusInProgress).Scan(
		&session.SessionID,
		&session.PhoneNumber,
		&session.Status,
		&session.CreatedAt,
		&session.CompletedAt,
	)

	if err == sql.ErrNoRows {
		// No active session is not an error
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active call session: %w", err)
	}

	return &session, nil
}
