package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/rabbitmq"
)

const (
	// DefaultAutoDismissDelay is how long a notification stays visible
	// before it dismisses itself.
	DefaultAutoDismissDelay = 10 * time.Second

	// DefaultProgressTick is the update period of the linear progress decay.
	DefaultProgressTick = 100 * time.Millisecond
)

// Notifier receives call-completed notifications from the poller.
type Notifier interface {
	Push(notification models.Notification)
}

type activeNotification struct {
	mu       sync.Mutex
	model    models.Notification
	timer    *time.Timer
	done     chan struct{}
	doneOnce sync.Once
}

func (a *activeNotification) snapshot() models.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

func (a *activeNotification) setProgress(p float64) {
	a.mu.Lock()
	a.model.Progress = p
	a.mu.Unlock()
}

func (a *activeNotification) stop() {
	a.timer.Stop()
	a.doneOnce.Do(func() { close(a.done) })
}

// NotificationManager holds the active call-completed alerts. Each
// notification carries two independent timers: a fixed auto-dismiss delay
// and a short tick driving the linear progress decay from 100 to 0 over the
// same delay. Multiple notifications may be active at once; there is no
// queueing or suppression.
type NotificationManager struct {
	mu        sync.Mutex
	active    map[string]*activeNotification
	order     []string
	delay     time.Duration
	tick      time.Duration
	publisher rabbitmq.Publisher
}

// NewNotificationManager creates a manager with the default timings.
// publisher may be nil; when set, every push is also fanned out to the
// call-events exchange.
func NewNotificationManager(publisher rabbitmq.Publisher) *NotificationManager {
	return &NotificationManager{
		active:    make(map[string]*activeNotification),
		delay:     DefaultAutoDismissDelay,
		tick:      DefaultProgressTick,
		publisher: publisher,
	}
}

// SetTimings overrides the auto-dismiss delay and progress tick. Intended
// for tests; must be called before the first Push.
func (m *NotificationManager) SetTimings(delay, tick time.Duration) {
	m.mu.Lock()
	m.delay = delay
	m.tick = tick
	m.mu.Unlock()
}

// Push adds a notification to the active set and starts its timers. Pushing
// an id that is already active restarts it.
func (m *NotificationManager) Push(notification models.Notification) {
	notification.Progress = 100

	m.mu.Lock()
	if existing, ok := m.active[notification.ID]; ok {
		existing.stop()
		m.removeLocked(notification.ID)
	}

	entry := &activeNotification{
		model: notification,
		done:  make(chan struct{}),
	}
	entry.timer = time.AfterFunc(m.delay, func() {
		m.Dismiss(notification.ID)
	})
	m.active[notification.ID] = entry
	m.order = append(m.order, notification.ID)
	delay, tick := m.delay, m.tick
	m.mu.Unlock()

	go m.decayProgress(entry, delay, tick)

	slog.Info("Call notification raised",
		"call_id", notification.CallID,
		"phone_number", notification.PhoneNumber)

	if m.publisher != nil {
		if err := m.publisher.PublishJSON(rabbitmq.CallEventsExchange, notification); err != nil {
			slog.Error("Failed to publish call event", "call_id", notification.CallID, "error", err)
		}
	}
}

func (m *NotificationManager) decayProgress(entry *activeNotification, delay, tick time.Duration) {
	step := 100 / (float64(delay) / float64(tick))
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	progress := float64(100)
	for {
		select {
		case <-entry.done:
			return
		case <-ticker.C:
			progress -= step
			if progress < 0 {
				progress = 0
			}
			entry.setProgress(progress)
		}
	}
}

// Dismiss removes a notification immediately, regardless of timer state,
// and cancels both of its timers. Dismissing an unknown id is a no-op.
func (m *NotificationManager) Dismiss(id string) {
	m.mu.Lock()
	entry, ok := m.active[id]
	if ok {
		m.removeLocked(id)
	}
	m.mu.Unlock()

	if ok {
		entry.stop()
	}
}

func (m *NotificationManager) removeLocked(id string) {
	delete(m.active, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Active returns the live notifications in push order with their current
// progress values.
func (m *NotificationManager) Active() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	notifications := make([]models.Notification, 0, len(m.order))
	for _, id := range m.order {
		if entry, ok := m.active[id]; ok {
			notifications = append(notifications, entry.snapshot())
		}
	}
	return notifications
}
