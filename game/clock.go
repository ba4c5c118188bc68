package game

import (
	"sync"
	"time"
)

// Clock provides the current monotonic time
type Clock interface {
	Now() time.Time
}

// Scheduler is the host frame loop: it calls every registered callback once
// per rendered frame.
type Scheduler interface {
	Clock
	OnFrame(fn func(now time.Time))
}

// SystemClock reads the real system time with its monotonic reading
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests and headless drivers
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
	frames  []func(time.Time)
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *ManualClock) OnFrame(fn func(now time.Time)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = append(m.frames, fn)
}

// Advance moves time forward by d and fires one frame
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	now := m.current
	frames := make([]func(time.Time), len(m.frames))
	copy(frames, m.frames)
	m.mu.Unlock()

	for _, fn := range frames {
		fn(now)
	}
}
