package models

// EntryStatus represents the dialing state of a queue entry.
type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCalling   EntryStatus = "calling"
	EntryCompleted EntryStatus = "completed"
)

// QueueEntry is a contact awaiting an outbound call. Position in the queue
// encodes dialing priority: the lowest-index pending entry is called first.
type QueueEntry struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Phone  string      `json:"phone"`
	Notes  string      `json:"notes,omitempty"`
	Status EntryStatus `json:"status"`
}
