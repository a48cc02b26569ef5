package schemas

import "github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"

// ToolsResponse represents the cached tool list
type ToolsResponse struct {
	Success bool          `json:"success"`
	Tools   []models.Tool `json:"tools"`
}

// UpdateToolStatusRequest represents the request body for toggling a tool
type UpdateToolStatusRequest struct {
	ToolID  string `json:"tool_id" binding:"required"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

// UpdateToolStatusResponse represents the response after a confirmed toggle
type UpdateToolStatusResponse struct {
	Success bool   `json:"success"`
	ToolID  string `json:"tool_id"`
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// AgentConfigurationRequest represents the request body for updating the AI
// agent's name or description
type AgentConfigurationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentConfigurationResponse mirrors the backend agent-configuration payload
type AgentConfigurationResponse struct {
	Success     bool   `json:"success"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
