package service

import (
	"context"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// AgentConfigSource is the backend surface holding the agent's identity.
type AgentConfigSource interface {
	AgentConfiguration(ctx context.Context) (name, description string, err error)
	UpdateAgentConfiguration(ctx context.Context, name, description string) (string, string, error)
}

// AgentService proxies the AI agent's name and description. Updates are part
// of the AI-customization surface and are rejected while a calling session is
// in progress.
type AgentService struct {
	source   AgentConfigSource
	sessions *SessionState
}

// NewAgentService creates an agent configuration service.
func NewAgentService(source AgentConfigSource, sessions *SessionState) *AgentService {
	return &AgentService{source: source, sessions: sessions}
}

// Configuration fetches the agent's current name and description.
func (s *AgentService) Configuration(ctx context.Context) (string, string, error) {
	return s.source.AgentConfiguration(ctx)
}

// Update changes the agent's name and/or description, guarded by the
// session-in-progress flag.
func (s *AgentService) Update(ctx context.Context, name, description string) (string, string, error) {
	if s.sessions.InProgress() {
		return "", "", models.ErrSessionInProgress
	}
	return s.source.UpdateAgentConfiguration(ctx, name, description)
}
