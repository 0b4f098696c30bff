package notify

// Package notify implements the transient notification queue: short-lived,
// auto-dismissing status messages rendered as toasts by the UI.

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/timing"
)

// Severity classifies a notification for display
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one visible toast. Exiting marks the exit transition phase
// that precedes detachment.
type Notification struct {
	ID       string
	Text     string
	Severity Severity
	Exiting  bool
}

// Queue holds the currently visible notifications in FIFO insertion order.
// Each notification is timed independently; removal is two-phase (exit
// transition, then detach after a fixed grace period) so the detach never
// races a concurrent re-render.
type Queue struct {
	mu       sync.Mutex
	sched    timing.Scheduler
	active   []*Notification
	onChange func([]Notification)
}

// NewQueue creates a notification queue using the given scheduler
func NewQueue(sched timing.Scheduler) *Queue {
	return &Queue{sched: sched}
}

// SetChangeCallback sets the callback invoked with a snapshot of the active
// notifications whenever the visible list changes
func (q *Queue) SetChangeCallback(cb func([]Notification)) {
	q.mu.Lock()
	q.onChange = cb
	q.mu.Unlock()
}

// Push enqueues a notification with the default TTL
func (q *Queue) Push(text string, severity Severity) {
	q.PushFor(text, severity, timing.NotificationTTL)
}

// PushFor enqueues a notification that stays visible for ttl before its exit
// transition begins
func (q *Queue) PushFor(text string, severity Severity, ttl time.Duration) {
	n := &Notification{
		ID:       uuid.NewString(),
		Text:     text,
		Severity: severity,
	}

	q.mu.Lock()
	q.active = append(q.active, n)
	q.mu.Unlock()
	q.emit()

	q.sched.AfterFunc(ttl, func() { q.beginExit(n.ID) })
}

// Info enqueues an informational notification
func (q *Queue) Info(text string) {
	q.Push(text, SeverityInfo)
}

// Success enqueues a success notification
func (q *Queue) Success(text string) {
	q.Push(text, SeveritySuccess)
}

// Error enqueues an error notification
func (q *Queue) Error(text string) {
	q.Push(text, SeverityError)
}

// Active returns a snapshot of the visible notifications in insertion order
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *Queue) beginExit(id string) {
	q.mu.Lock()
	found := false
	for _, n := range q.active {
		if n.ID == id {
			n.Exiting = true
			found = true
			break
		}
	}
	q.mu.Unlock()

	if !found {
		return
	}
	q.emit()

	q.sched.AfterFunc(timing.NotificationExitGrace, func() { q.detach(id) })
}

func (q *Queue) detach(id string) {
	q.mu.Lock()
	found := false
	for i, n := range q.active {
		if n.ID == id {
			q.active = append(q.active[:i], q.active[i+1:]...)
			found = true
			break
		}
	}
	q.mu.Unlock()

	if found {
		q.emit()
	}
}

func (q *Queue) emit() {
	q.mu.Lock()
	cb := q.onChange
	snapshot := q.snapshotLocked()
	q.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

func (q *Queue) snapshotLocked() []Notification {
	out := make([]Notification, len(q.active))
	for i, n := range q.active {
		out[i] = *n
	}
	return out
}
