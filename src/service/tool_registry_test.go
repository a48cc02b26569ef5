package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

type fakeToolSource struct {
	mu        sync.Mutex
	tools     []models.Tool
	loadErr   error
	updateErr error
	updates   []string

	// When set, UpdateToolStatus blocks until the channel closes.
	blockUpdate chan struct{}
}

func (f *fakeToolSource) AvailableTools(ctx context.Context) ([]models.Tool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	tools := make([]models.Tool, len(f.tools))
	copy(tools, f.tools)
	return tools, nil
}

func (f *fakeToolSource) UpdateToolStatus(ctx context.Context, toolID string, enabled bool) error {
	f.mu.Lock()
	block := f.blockUpdate
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, toolID)
	return f.updateErr
}

func toolFixture() []models.Tool {
	return []models.Tool{
		{ID: "t1", Name: "End Call", Type: models.ToolBase, Enabled: true},
		{ID: "t2", Name: "Query Database", Type: models.ToolDatabase, Enabled: false},
		{ID: "t3", Name: "Transfer Call", Type: models.ToolTransfer, Enabled: false},
	}
}

func TestLoadReplacesCacheWholesale(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture()}
	r := NewToolRegistry(source, NewSessionState())

	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(r.Tools()) != 3 {
		t.Fatalf("cached %d tools, want 3", len(r.Tools()))
	}

	source.mu.Lock()
	source.tools = []models.Tool{{ID: "t9", Name: "New Tool", Type: models.ToolBase}}
	source.mu.Unlock()

	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	tools := r.Tools()
	if len(tools) != 1 || tools[0].ID != "t9" {
		t.Fatalf("cache after reload = %+v, want single t9", tools)
	}
}

func TestLoadErrorLeavesCacheUntouched(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture()}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	source.mu.Lock()
	source.loadErr = errors.New("backend down")
	source.mu.Unlock()

	if err := r.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if len(r.Tools()) != 3 {
		t.Fatal("failed load clobbered the cache")
	}
}

func TestToggleFlipsOnlyAfterConfirmation(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture()}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := r.Toggle(context.Background(), "t2", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	for _, tool := range r.Tools() {
		if tool.ID == "t2" && !tool.Enabled {
			t.Fatal("confirmed toggle was not applied")
		}
	}
}

func TestToggleFailureLeavesCacheUntouched(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture(), updateErr: errors.New("update rejected")}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := r.Toggle(context.Background(), "t2", true); err == nil {
		t.Fatal("expected toggle error")
	}

	for _, tool := range r.Tools() {
		if tool.ID == "t2" && tool.Enabled {
			t.Fatal("failed toggle mutated the cache")
		}
	}
}

func TestToggleRejectedDuringCallingSession(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture()}
	sessions := NewSessionState()
	r := NewToolRegistry(source, sessions)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if !sessions.Begin() {
		t.Fatal("begin failed")
	}
	defer sessions.End()

	if err := r.Toggle(context.Background(), "t2", true); !errors.Is(err, models.ErrSessionInProgress) {
		t.Fatalf("err = %v, want ErrSessionInProgress", err)
	}
	if len(source.updates) != 0 {
		t.Fatal("guarded toggle still reached the backend")
	}
}

func TestToggleUnknownTool(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture()}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := r.Toggle(context.Background(), "missing", true); !errors.Is(err, models.ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
}

func TestToggleDeduplicatesInFlightRequests(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture(), blockUpdate: make(chan struct{})}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	first := make(chan error, 1)
	go func() { first <- r.Toggle(context.Background(), "t2", true) }()

	// Wait until the first toggle is parked inside the backend call.
	waitFor(t, time.Second, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.inflight["t2"]
	})

	if err := r.Toggle(context.Background(), "t2", false); !errors.Is(err, models.ErrToggleInFlight) {
		t.Fatalf("second toggle err = %v, want ErrToggleInFlight", err)
	}

	close(source.blockUpdate)
	if err := <-first; err != nil {
		t.Fatalf("first toggle: %v", err)
	}

	// The slot frees up once the confirmation lands.
	source.mu.Lock()
	source.blockUpdate = nil
	source.mu.Unlock()
	if err := r.Toggle(context.Background(), "t2", false); err != nil {
		t.Fatalf("toggle after completion: %v", err)
	}
}

func TestStaleConfirmationDroppedAfterReload(t *testing.T) {
	source := &fakeToolSource{tools: toolFixture(), blockUpdate: make(chan struct{})}
	r := NewToolRegistry(source, NewSessionState())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- r.Toggle(context.Background(), "t2", true) }()
	waitFor(t, time.Second, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.inflight["t2"]
	})

	// The backend stops reporting t2 while the toggle is still in flight.
	source.mu.Lock()
	source.tools = []models.Tool{{ID: "t1", Name: "End Call", Type: models.ToolBase, Enabled: true}}
	source.mu.Unlock()
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	close(source.blockUpdate)
	if err := <-done; err != nil {
		t.Fatalf("toggle: %v", err)
	}

	for _, tool := range r.Tools() {
		if tool.ID == "t2" {
			t.Fatal("vanished tool reappeared in cache")
		}
	}
}
