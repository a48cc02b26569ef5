package schemas

import "github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"

// AddEntryRequest represents the request body for adding a queue entry
type AddEntryRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Notes string `json:"notes"`
}

// ReorderRequest represents the request body for moving an entry to a new
// position in the queue
type ReorderRequest struct {
	FromIndex int `json:"from_index" binding:"min=0"`
	ToIndex   int `json:"to_index" binding:"min=0"`
}

// EditEntryRequest represents the request body for an in-place field update
type EditEntryRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// QueueResponse represents the full ordered queue
type QueueResponse struct {
	Entries []models.QueueEntry `json:"entries"`
}

// ImportResponse reports how many rows of a bulk import were accepted
type ImportResponse struct {
	Message  string `json:"message"`
	Accepted int    `json:"accepted"`
}

// StartNextResponse reports the entry whose dial was initiated and the
// backend session id
type StartNextResponse struct {
	Message   string            `json:"message"`
	Entry     models.QueueEntry `json:"entry"`
	SessionID string            `json:"session_id"`
}

// EndSessionResponse reports how many entries were marked completed
type EndSessionResponse struct {
	Message   string `json:"message"`
	Completed int    `json:"completed"`
}
