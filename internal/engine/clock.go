package engine

import (
	"sync"
	"time"
)

// Clock supplies monotonic time to the scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading, so
// differences between two calls are immune to wall clock jumps.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// MockClock is a manually driven clock for tests.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a clock frozen at start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Pacer measures host time between frames.
type Pacer struct {
	clock Clock
	last  time.Time
	begun bool
}

// NewPacer creates a pacer reading from clock.
func NewPacer(clock Clock) *Pacer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Pacer{clock: clock}
}

// Elapsed returns the time since the previous call. The first call returns 0.
func (p *Pacer) Elapsed() time.Duration {
	now := p.clock.Now()
	if !p.begun {
		p.begun = true
		p.last = now
		return 0
	}
	d := now.Sub(p.last)
	p.last = now
	if d < 0 {
		return 0
	}
	return d
}
