package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/rabbitmq"
)

type fakePublisher struct {
	mu        sync.Mutex
	err       error
	exchanges []string
	payloads  []any
}

func (f *fakePublisher) PublishJSON(exchange string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exchanges = append(f.exchanges, exchange)
	f.payloads = append(f.payloads, payload)
	return f.err
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNotificationStartsAtFullProgress(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1", PhoneNumber: "100"})

	active := m.Active()
	if len(active) != 1 {
		t.Fatalf("active = %d, want 1", len(active))
	}
	if active[0].Progress != 100 {
		t.Fatalf("initial progress = %v, want 100", active[0].Progress)
	}
}

func TestNotificationAutoDismisses(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(50*time.Millisecond, 10*time.Millisecond)

	m.Push(models.Notification{ID: "c1", CallID: "c1"})

	waitFor(t, time.Second, func() bool { return len(m.Active()) == 0 })
}

func TestNotificationProgressDecaysLinearly(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(500*time.Millisecond, 10*time.Millisecond)

	m.Push(models.Notification{ID: "c1", CallID: "c1"})

	waitFor(t, time.Second, func() bool {
		active := m.Active()
		return len(active) == 1 && active[0].Progress < 100
	})

	active := m.Active()
	if len(active) != 1 {
		t.Fatal("notification dismissed before delay elapsed")
	}
	if p := active[0].Progress; p < 0 || p >= 100 {
		t.Fatalf("decayed progress = %v, want within [0, 100)", p)
	}
}

func TestDismissCancelsTimers(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1"})
	m.Dismiss("c1")

	if len(m.Active()) != 0 {
		t.Fatal("notification still active after dismiss")
	}

	// Dismissing again, or an unknown id, must be a no-op.
	m.Dismiss("c1")
	m.Dismiss("never-existed")
}

func TestMultipleNotificationsKeepPushOrder(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1"})
	m.Push(models.Notification{ID: "c2", CallID: "c2"})
	m.Push(models.Notification{ID: "c3", CallID: "c3"})

	active := m.Active()
	if len(active) != 3 {
		t.Fatalf("active = %d, want 3", len(active))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if active[i].ID != want {
			t.Fatalf("active[%d] = %s, want %s", i, active[i].ID, want)
		}
	}

	m.Dismiss("c2")
	active = m.Active()
	if len(active) != 2 || active[0].ID != "c1" || active[1].ID != "c3" {
		t.Fatalf("after dismissing middle entry: %+v", active)
	}
}

func TestPushFansOutToPublisher(t *testing.T) {
	publisher := &fakePublisher{}
	m := NewNotificationManager(publisher)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1", PhoneNumber: "100"})
	m.Push(models.Notification{ID: "c2", CallID: "c2", PhoneNumber: "200"})

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	if len(publisher.payloads) != 2 {
		t.Fatalf("published %d events, want one per push", len(publisher.payloads))
	}
	for _, exchange := range publisher.exchanges {
		if exchange != rabbitmq.CallEventsExchange {
			t.Fatalf("published to %q, want %q", exchange, rabbitmq.CallEventsExchange)
		}
	}
	first, ok := publisher.payloads[0].(models.Notification)
	if !ok || first.CallID != "c1" {
		t.Fatalf("payload[0] = %+v, want notification for c1", publisher.payloads[0])
	}
}

func TestPublisherFailureDoesNotDropNotification(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("broker unreachable")}
	m := NewNotificationManager(publisher)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1"})

	if len(m.Active()) != 1 {
		t.Fatal("failed fan-out suppressed the dashboard notification")
	}
}

func TestRepushRestartsNotification(t *testing.T) {
	m := NewNotificationManager(nil)
	m.SetTimings(time.Hour, time.Hour)

	m.Push(models.Notification{ID: "c1", CallID: "c1", PhoneNumber: "old"})
	m.Push(models.Notification{ID: "c1", CallID: "c1", PhoneNumber: "new"})

	active := m.Active()
	if len(active) != 1 {
		t.Fatalf("active = %d, want 1", len(active))
	}
	if active[0].PhoneNumber != "new" {
		t.Fatalf("phone = %q, want new", active[0].PhoneNumber)
	}
	if active[0].Progress != 100 {
		t.Fatalf("progress = %v, want reset to 100", active[0].Progress)
	}
}
