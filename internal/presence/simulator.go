package presence

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/corpus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcaster pushes an ephemeral event to connected clients.
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

// QueueReader exposes the scheduler's pending-queue depth, which drives the
// "queued" signal.
type QueueReader interface {
	PendingCount(ctx context.Context) (int, error)
}

// Notification is a transient banner message. It is never persisted and is
// safe to drop on restart.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Snapshot is the presence state the presentation layer polls: the current
// typing indicator (sender address or empty), the most-recent-first
// notification list, the unread notification counter and the scheduler's
// pending-queue depth.
type Snapshot struct {
	Typing        string         `json:"typing,omitempty"`
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
	QueuedPending int            `json:"queued_pending"`
}

const maxNotifications = 5

var notificationPool = []string{
	"New customer signed up for a trial",
	"Weekly CSAT report is ready",
	"A teammate mentioned you in ticket #4821",
	"Knowledge base article was updated",
	"SLA reminder: 2 tickets approaching first-response deadline",
	"Integration sync completed",
}

// Simulator emits ephemeral typing and notification signals on randomized
// intervals. It never mutates email or schedule state.
type Simulator struct {
	mu            sync.Mutex
	rng           *rand.Rand
	clock         clock.Clock
	queue         QueueReader
	broadcaster   Broadcaster
	logger        *zap.Logger
	minInterval   time.Duration
	maxInterval   time.Duration
	typingDisplay time.Duration

	typing        string
	notifications []Notification
	unread        int

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSimulator(
	rng *rand.Rand,
	clk clock.Clock,
	queue QueueReader,
	broadcaster Broadcaster,
	logger *zap.Logger,
	minInterval, maxInterval, typingDisplay time.Duration,
) *Simulator {
	ctx, cancel := context.WithCancel(context.Background())

	return &Simulator{
		rng:           rng,
		clock:         clk,
		queue:         queue,
		broadcaster:   broadcaster,
		logger:        logger,
		minInterval:   minInterval,
		maxInterval:   maxInterval,
		typingDisplay: typingDisplay,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start launches the two independent generators. Their relative firing order
// is unsynchronized.
func (s *Simulator) Start() {
	go s.loop(s.PulseTyping)
	go s.loop(s.PushNotification)
}

// Stop halts both generators.
func (s *Simulator) Stop() {
	s.cancel()
}

func (s *Simulator) loop(pulse func()) {
	for {
		select {
		case <-s.clock.After(s.nextInterval()):
			pulse()
		case <-s.ctx.Done():
			return
		}
	}
}

// nextInterval re-arms a generator within the configured bounded range.
func (s *Simulator) nextInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	spread := s.maxInterval - s.minInterval
	if spread <= 0 {
		return s.minInterval
	}
	return s.minInterval + time.Duration(s.rng.Int63n(int64(spread)))
}

// PulseTyping shows a typing indicator for a plausible sender, then clears
// it after the display duration - exported for testing.
func (s *Simulator) PulseTyping() {
	senders := corpus.Senders()

	s.mu.Lock()
	sender := senders[s.rng.Intn(len(senders))]
	s.typing = sender
	s.mu.Unlock()

	s.broadcaster.Broadcast("typing", map[string]string{"sender": sender})
	s.logger.Debug("typing pulse", zap.String("sender", sender))

	go func() {
		select {
		case <-s.clock.After(s.typingDisplay):
			s.ClearTyping(sender)
		case <-s.ctx.Done():
		}
	}()
}

// ClearTyping removes the typing indicator if it still names the given
// sender; a newer pulse wins.
func (s *Simulator) ClearTyping(sender string) {
	s.mu.Lock()
	if s.typing != sender {
		s.mu.Unlock()
		return
	}
	s.typing = ""
	s.mu.Unlock()

	s.broadcaster.Broadcast("typing", map[string]string{"sender": ""})
}

// PushNotification appends a notification from the fixed pool and, when the
// scheduler queue is non-empty, re-emits the "queued" signal - exported for
// testing.
func (s *Simulator) PushNotification() {
	s.mu.Lock()
	notification := Notification{
		ID:      uuid.New().String(),
		Message: notificationPool[s.rng.Intn(len(notificationPool))],
		Time:    s.clock.Now(),
	}

	// Most-recent-first, capped.
	s.notifications = append([]Notification{notification}, s.notifications...)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[:maxNotifications]
	}
	s.unread++
	unread := s.unread
	s.mu.Unlock()

	s.broadcaster.Broadcast("notification", map[string]interface{}{
		"notification": notification,
		"unread":       unread,
	})

	if pending, err := s.queue.PendingCount(s.ctx); err == nil && pending > 0 {
		s.broadcaster.Broadcast("queued", map[string]int{"pending": pending})
	}
}

// MarkSeen resets the unread notification counter.
func (s *Simulator) MarkSeen() {
	s.mu.Lock()
	s.unread = 0
	s.mu.Unlock()
}

// Snapshot returns the current presence state for polling clients.
func (s *Simulator) Snapshot(ctx context.Context) Snapshot {
	pending := 0
	if count, err := s.queue.PendingCount(ctx); err == nil {
		pending = count
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]Notification, len(s.notifications))
	copy(notifications, s.notifications)

	return Snapshot{
		Typing:        s.typing,
		Notifications: notifications,
		Unread:        s.unread,
		QueuedPending: pending,
	}
}
