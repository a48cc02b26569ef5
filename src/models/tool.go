package models

// ToolType distinguishes where a capability comes from.
type ToolType string

const (
	ToolBase     ToolType = "base"
	ToolDatabase ToolType = "database"
	ToolTransfer ToolType = "transfer"
)

// Tool is a named, independently toggleable capability exposed to the AI
// agent. The backend is the source of truth; the gateway holds a cached copy.
type Tool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ToolType `json:"type"`
	Enabled     bool     `json:"enabled"`
}
