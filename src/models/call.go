package models

// CallRecord is a read-only mirror of a finished call as reported by the
// backend call-history endpoint. Records are immutable once fetched.
type CallRecord struct {
	ID           int    `json:"id"`
	CallID       string `json:"call_id"`
	PhoneNumber  string `json:"phone_number"`
	CustomerName string `json:"customer_name,omitempty"`
	Status       string `json:"status"`
	Duration     int    `json:"duration"`
	StartedAt    string `json:"started_at"`
	EndedAt      string `json:"ended_at"`
	Summary      string `json:"summary"`
	Transcript   string `json:"transcript"`
	RecordingURL string `json:"recording_url,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Notification is a transient call-completed alert. Its id is the call id of
// the record that triggered it, so one call never notifies twice.
type Notification struct {
	ID           string  `json:"id"`
	CallID       string  `json:"call_id"`
	PhoneNumber  string  `json:"phone_number"`
	CustomerName string  `json:"customer_name,omitempty"`
	Progress     float64 `json:"progress"`
}
