package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// DefaultPollInterval is the fixed cadence of the call-history poller.
const DefaultPollInterval = 5 * time.Second

// HistorySource fetches the call record log, newest first.
type HistorySource interface {
	CallHistory(ctx context.Context) ([]models.CallRecord, error)
}

// HistoryPoller periodically fetches call records from the backend, keeps the
// latest snapshot as a local mirror, and raises exactly one notification for
// each newly appeared newest call. The first successful fetch only seeds the
// last-seen id, so pre-existing history never notifies on startup.
//
// A single failed tick is logged and retried on the next one; the loop never
// stops on an error.
type HistoryPoller struct {
	source   HistorySource
	notifier Notifier
	interval time.Duration

	mu       sync.RWMutex
	lastSeen string
	seeded   bool
	records  []models.CallRecord
}

// NewHistoryPoller creates a poller with the default interval.
func NewHistoryPoller(source HistorySource, notifier Notifier) *HistoryPoller {
	return &HistoryPoller{
		source:   source,
		notifier: notifier,
		interval: DefaultPollInterval,
	}
}

// SetInterval overrides the polling cadence. Intended for tests; must be
// called before Run.
func (p *HistoryPoller) SetInterval(interval time.Duration) {
	p.interval = interval
}

// Run polls until ctx is cancelled. The interval timer restarts from zero
// after each tick completes, so a slow fetch never causes ticks to pile up.
// A fetch resolving after cancellation is discarded.
func (p *HistoryPoller) Run(ctx context.Context) {
	slog.Info("Starting call-history poller", "interval", p.interval)

	p.tick(ctx)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Call-history poller stopped")
			return
		case <-timer.C:
			p.tick(ctx)
			timer.Reset(p.interval)
		}
	}
}

func (p *HistoryPoller) tick(ctx context.Context) {
	records, err := p.source.CallHistory(ctx)
	if ctx.Err() != nil {
		// The owning context was torn down while the fetch was in
		// flight; the result is stale and must not be observed.
		return
	}
	if err != nil {
		slog.Warn("Call-history fetch failed, will retry next tick", "error", err)
		return
	}

	p.observe(records)
}

// observe applies one successful fetch result to the poller state.
func (p *HistoryPoller) observe(records []models.CallRecord) {
	p.mu.Lock()
	p.records = records
	if len(records) == 0 {
		p.mu.Unlock()
		return
	}

	newest := records[0]
	var notify bool
	switch {
	case !p.seeded:
		p.seeded = true
		p.lastSeen = newest.CallID
	case newest.CallID != p.lastSeen:
		notify = true
		p.lastSeen = newest.CallID
	}
	p.mu.Unlock()

	if notify {
		slog.Info("New call detected", "call_id", newest.CallID)
		p.notifier.Push(models.Notification{
			ID:           newest.CallID,
			CallID:       newest.CallID,
			PhoneNumber:  newest.PhoneNumber,
			CustomerName: newest.CustomerName,
		})
	}
}

// Records returns the latest fetched call-history snapshot.
func (p *HistoryPoller) Records() []models.CallRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	records := make([]models.CallRecord, len(p.records))
	copy(records, p.records)
	return records
}
