package timing

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls, for tests.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	pending []scheduled
	seq     int
}

type scheduled struct {
	at  time.Duration
	seq int // preserves scheduling order among same-deadline callbacks
	fn  func()
}

// NewManual creates a manual scheduler starting at time zero
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules f to run when the manual clock passes d from now
func (m *Manual) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pending = append(m.pending, scheduled{at: m.now + d, seq: m.seq, fn: f})
}

// Advance moves the clock forward and fires due callbacks in deadline order.
// Callbacks run without the lock held, so they may schedule further work.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	deadline := m.now
	m.mu.Unlock()

	for {
		fn := m.popDue(deadline)
		if fn == nil {
			return
		}
		fn()
	}
}

// Pending returns the number of callbacks not yet fired
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Manual) popDue(deadline time.Duration) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	if len(m.pending) == 0 || m.pending[0].at > deadline {
		return nil
	}

	fn := m.pending[0].fn
	m.pending = m.pending[1:]
	return fn
}
