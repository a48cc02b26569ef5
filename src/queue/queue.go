package queue

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// Queue is the ordered calling list. Array position encodes dialing priority:
// the lowest-index pending entry is dialed first. At most one entry may be in
// the calling state at any time.
//
// All operations are local and cannot fail except through the outbound-call
// request, which is handled by the calling service, not here.
type Queue struct {
	mu      sync.RWMutex
	entries []models.QueueEntry
}

// NewQueue creates an empty calling queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends a new pending entry with a fresh id and returns it.
func (q *Queue) Add(name, phone, notes string) models.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := models.QueueEntry{
		ID:     uuid.New().String(),
		Name:   strings.TrimSpace(name),
		Phone:  strings.TrimSpace(phone),
		Notes:  strings.TrimSpace(notes),
		Status: models.EntryPending,
	}
	q.entries = append(q.entries, entry)
	return entry
}

// Column synonyms accepted by bulk import, matched case-insensitively.
var (
	nameColumns  = []string{"name", "contact_name", "contact name", "customer_name"}
	phoneColumns = []string{"phone", "phonenumber", "phone number", "mobile", "number"}
	notesColumns = []string{"description", "enquiry", "notes", "query"}
)

func resolveColumn(row map[string]string, synonyms []string) string {
	for _, key := range synonyms {
		if value, ok := row[key]; ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// ImportBulk accepts parsed tabular rows and prepends the valid ones as new
// pending entries, newest-import-first. Rows without both a resolvable name
// and phone are silently dropped. It returns the number of accepted rows.
func (q *Queue) ImportBulk(rows []map[string]string) int {
	imported := make([]models.QueueEntry, 0, len(rows))
	for _, row := range rows {
		normalized := make(map[string]string, len(row))
		for key, value := range row {
			normalized[strings.ToLower(strings.TrimSpace(key))] = value
		}

		name := resolveColumn(normalized, nameColumns)
		phone := resolveColumn(normalized, phoneColumns)
		if name == "" || phone == "" {
			continue
		}

		imported = append(imported, models.QueueEntry{
			ID:     uuid.New().String(),
			Name:   name,
			Phone:  phone,
			Notes:  resolveColumn(normalized, notesColumns),
			Status: models.EntryPending,
		})
	}

	if len(imported) == 0 {
		return 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(imported, q.entries...)
	return len(imported)
}

// Reorder removes the entry at fromIndex and reinserts it at toIndex,
// preserving the relative order of every other entry. It is a stable list
// move, not a swap.
func (q *Queue) Reorder(fromIndex, toIndex int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if fromIndex < 0 || fromIndex >= len(q.entries) ||
		toIndex < 0 || toIndex >= len(q.entries) {
		return models.ErrEntryNotFound
	}
	if fromIndex == toIndex {
		return nil
	}

	moved := q.entries[fromIndex]
	q.entries = append(q.entries[:fromIndex], q.entries[fromIndex+1:]...)

	rest := append([]models.QueueEntry{}, q.entries[toIndex:]...)
	q.entries = append(q.entries[:toIndex], moved)
	q.entries = append(q.entries, rest...)
	return nil
}

// Edit updates a single field of the entry with the given id. Editing an
// absent id or an unknown field is a silent no-op; it reports whether a
// change was applied.
func (q *Queue) Edit(id, field, value string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].ID != id {
			continue
		}
		switch field {
		case "name":
			q.entries[i].Name = value
		case "phone":
			q.entries[i].Phone = value
		case "notes":
			q.entries[i].Notes = value
		default:
			return false
		}
		return true
	}
	return false
}

// Remove deletes the entry with the given id and reports whether it existed.
func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// NextPending returns the first entry in queue order with pending status.
func (q *Queue) NextPending() (models.QueueEntry, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for _, entry := range q.entries {
		if entry.Status == models.EntryPending {
			return entry, true
		}
	}
	return models.QueueEntry{}, false
}

// MarkCalling transitions the entry with the given id from pending to
// calling. It refuses the transition while another entry is already calling.
func (q *Queue) MarkCalling(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].Status == models.EntryCalling {
			return models.ErrAlreadyCalling
		}
	}
	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries[i].Status = models.EntryCalling
			return nil
		}
	}
	return models.ErrEntryNotFound
}

// MarkPending rolls the entry with the given id back to pending after a
// failed dial, so it re-enters the pool for a future start.
func (q *Queue) MarkPending(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries[i].Status = models.EntryPending
			return nil
		}
	}
	return models.ErrEntryNotFound
}

// CompleteCalling transitions every calling entry to completed and returns
// how many were transitioned. Pending and completed entries are untouched.
func (q *Queue) CompleteCalling() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	completed := 0
	for i := range q.entries {
		if q.entries[i].Status == models.EntryCalling {
			q.entries[i].Status = models.EntryCompleted
			completed++
		}
	}
	return completed
}

// Entries returns a copy of the queue in priority order.
func (q *Queue) Entries() []models.QueueEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()

	entries := make([]models.QueueEntry, len(q.entries))
	copy(entries, q.entries)
	return entries
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}
