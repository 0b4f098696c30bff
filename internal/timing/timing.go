package timing

// Package timing collects every UI choreography duration in one table and
// provides the Scheduler seam so timers are reproducible in tests without
// real wall-clock waits.

import "time"

// Choreography durations. These are deliberate UX pacing devices, not
// network waits.
const (
	// NotificationTTL is how long a toast stays fully visible
	NotificationTTL = 4 * time.Second

	// NotificationExitGrace is the window between the exit transition
	// starting and the toast being detached
	NotificationExitGrace = 300 * time.Millisecond

	// CopyAckNotificationTTL shortens the toast for clipboard confirmations
	CopyAckNotificationTTL = 2 * time.Second

	// BreedRevealDelay separates the base-category reveal from the breed
	// and confidence reveal
	BreedRevealDelay = 1500 * time.Millisecond

	// FeedbackCooldown is how long the submit action stays disabled after
	// an accepted correction
	FeedbackCooldown = 3 * time.Second

	// CopyAckRevert is how long the copy button shows its acknowledgment
	CopyAckRevert = 2 * time.Second
)

// Scheduler runs a function after a delay. Scheduled callbacks are not
// cancelable; callers guard against staleness at fire time instead.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Real returns a Scheduler backed by the wall clock
func Real() Scheduler {
	return realScheduler{}
}
