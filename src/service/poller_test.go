package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

type fakeHistorySource struct {
	mu        sync.Mutex
	responses [][]models.CallRecord
	errs      []error
	calls     int
}

func (f *fakeHistorySource) CallHistory(ctx context.Context) ([]models.CallRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	if len(f.responses) == 0 {
		return nil, nil
	}
	return f.responses[len(f.responses)-1], nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	pushed []models.Notification
}

func (f *fakeNotifier) Push(n models.Notification) {
	f.mu.Lock()
	f.pushed = append(f.pushed, n)
	f.mu.Unlock()
}

func (f *fakeNotifier) all() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.pushed))
	copy(out, f.pushed)
	return out
}

func record(callID, phone string) models.CallRecord {
	return models.CallRecord{CallID: callID, PhoneNumber: phone}
}

func TestPollerFirstFetchSeedsWithoutNotifying(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &fakeHistorySource{responses: [][]models.CallRecord{
		{record("A", "1"), record("B", "2")},
	}}
	p := NewHistoryPoller(source, notifier)

	p.tick(context.Background())

	if got := notifier.all(); len(got) != 0 {
		t.Fatalf("first fetch emitted %d notifications, want 0", len(got))
	}
	if len(p.Records()) != 2 {
		t.Fatalf("snapshot has %d records, want 2", len(p.Records()))
	}
}

func TestPollerNotifiesExactlyOncePerNewCall(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &fakeHistorySource{responses: [][]models.CallRecord{
		{record("A", "1"), record("B", "2")},
		{record("C", "3"), record("A", "1"), record("B", "2")},
		{record("C", "3"), record("A", "1"), record("B", "2")},
	}}
	p := NewHistoryPoller(source, notifier)

	ctx := context.Background()
	p.tick(ctx)
	p.tick(ctx)
	p.tick(ctx)

	got := notifier.all()
	if len(got) != 1 {
		t.Fatalf("emitted %d notifications, want exactly 1", len(got))
	}
	if got[0].CallID != "C" || got[0].ID != "C" {
		t.Fatalf("notification = %+v, want call C", got[0])
	}
	if got[0].PhoneNumber != "3" {
		t.Fatalf("notification phone = %q, want 3", got[0].PhoneNumber)
	}
}

func TestPollerEmptyHistoryNeverNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &fakeHistorySource{responses: [][]models.CallRecord{
		nil,
		{record("A", "1")},
	}}
	p := NewHistoryPoller(source, notifier)

	ctx := context.Background()
	p.tick(ctx)
	// First non-empty fetch still only seeds; A existed before this view.
	p.tick(ctx)

	if got := notifier.all(); len(got) != 0 {
		t.Fatalf("emitted %d notifications, want 0", len(got))
	}
}

func TestPollerFailedTickRetriesWithoutNotifying(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &fakeHistorySource{
		responses: [][]models.CallRecord{
			{record("A", "1")},
			nil, // consumed by the error slot
			{record("B", "2"), record("A", "1")},
		},
		errs: []error{nil, errors.New("backend down"), nil},
	}
	p := NewHistoryPoller(source, notifier)

	ctx := context.Background()
	p.tick(ctx)
	p.tick(ctx)
	p.tick(ctx)

	got := notifier.all()
	if len(got) != 1 || got[0].CallID != "B" {
		t.Fatalf("notifications after failure = %+v, want single B", got)
	}
}

type blockingSource struct {
	release chan struct{}
	result  []models.CallRecord
}

func (b *blockingSource) CallHistory(ctx context.Context) ([]models.CallRecord, error) {
	<-b.release
	return b.result, nil
}

func TestPollerDiscardsResultAfterCancellation(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &blockingSource{
		release: make(chan struct{}),
		result:  []models.CallRecord{record("A", "1")},
	}
	p := NewHistoryPoller(source, notifier)
	p.SetInterval(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// Cancel while the first fetch is still blocked, then let it resolve.
	cancel()
	close(source.release)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}

	if len(p.Records()) != 0 {
		t.Fatal("cancelled fetch result was observed")
	}
	if len(notifier.all()) != 0 {
		t.Fatal("cancelled fetch emitted a notification")
	}
}

func TestPollerRunStopsTicking(t *testing.T) {
	notifier := &fakeNotifier{}
	source := &fakeHistorySource{responses: [][]models.CallRecord{{record("A", "1")}}}
	p := NewHistoryPoller(source, notifier)
	p.SetInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	source.mu.Lock()
	after := source.calls
	source.mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	source.mu.Lock()
	defer source.mu.Unlock()
	if source.calls != after {
		t.Fatalf("ticks continued after unmount: %d -> %d", after, source.calls)
	}
}
