package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// ToolSource is the backend surface the registry mirrors.
type ToolSource interface {
	AvailableTools(ctx context.Context) ([]models.Tool, error)
	UpdateToolStatus(ctx context.Context, toolID string, enabled bool) error
}

// ToolRegistry is the client-side mirror of the server-held capability list.
// The backend is the source of truth: Load replaces the cache wholesale, and
// Toggle only flips the local flag after the backend confirmed the update.
// There is deliberately no optimistic flip here; silently granting a
// capability that failed to persist is worse than a stale switch.
type ToolRegistry struct {
	source   ToolSource
	sessions *SessionState

	mu       sync.Mutex
	tools    []models.Tool
	inflight map[string]bool
}

// NewToolRegistry creates an empty registry guarded by the shared session
// state.
func NewToolRegistry(source ToolSource, sessions *SessionState) *ToolRegistry {
	return &ToolRegistry{
		source:   source,
		sessions: sessions,
		inflight: make(map[string]bool),
	}
}

// Load fetches the full tool list and replaces the cache wholesale. There is
// no merging: whatever the backend reports is the new truth.
func (r *ToolRegistry) Load(ctx context.Context) error {
	tools, err := r.source.AvailableTools(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.tools = tools
	r.mu.Unlock()

	slog.Info("Loaded available tools", "count", len(tools))
	return nil
}

// Tools returns a copy of the cached tool list.
func (r *ToolRegistry) Tools() []models.Tool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tools := make([]models.Tool, len(r.tools))
	copy(tools, r.tools)
	return tools
}

// Toggle requests the backend to set the tool's enabled flag and applies the
// flip locally only on confirmation. It is a guarded no-op while a calling
// session is in progress or while a toggle for the same id is outstanding.
//
// A slow confirmation may resolve after a later Load replaced the cache; the
// flip is then applied only if the id still exists, and silently dropped
// otherwise.
func (r *ToolRegistry) Toggle(ctx context.Context, toolID string, enabled bool) error {
	r.mu.Lock()
	if r.sessions.InProgress() {
		r.mu.Unlock()
		return models.ErrSessionInProgress
	}
	if r.inflight[toolID] {
		r.mu.Unlock()
		return models.ErrToggleInFlight
	}
	if _, ok := r.findLocked(toolID); !ok {
		r.mu.Unlock()
		return models.ErrToolNotFound
	}
	r.inflight[toolID] = true
	r.mu.Unlock()

	err := r.source.UpdateToolStatus(ctx, toolID, enabled)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, toolID)

	if err != nil {
		// Cache stays untouched; the caller surfaces the error.
		return err
	}

	if i, ok := r.findLocked(toolID); ok {
		r.tools[i].Enabled = enabled
		slog.Info("Tool status updated", "tool_id", toolID, "enabled", enabled)
	} else {
		slog.Warn("Tool vanished from cache before confirmation arrived, dropping flip",
			"tool_id", toolID)
	}
	return nil
}

func (r *ToolRegistry) findLocked(toolID string) (int, bool) {
	for i := range r.tools {
		if r.tools[i].ID == toolID {
			return i, true
		}
	}
	return 0, false
}
