package sim

import (
	"sync"
	"time"
)

// TriggerMonitor compares media playback time against the authored
// timestamp list each frame and reports each crossing once per playback
// pass. The fired-set is the only state shared between the frame loop and
// the deferred grace-release timers, so it sits behind a mutex.
type TriggerMonitor struct {
	mu         sync.Mutex
	timestamps []float64
	fired      map[float64]bool
	grace      time.Duration

	// replaceable in tests; defaults to time.AfterFunc
	deferFunc func(time.Duration, func())
}

func NewTriggerMonitor(timestamps []float64, grace time.Duration) *TriggerMonitor {
	return &TriggerMonitor{
		timestamps: timestamps,
		fired:      make(map[float64]bool),
		grace:      grace,
		deferFunc:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Poll returns every timestamp crossed between the previous and current
// playback times that has not already fired this pass. A backward jump
// past the one-second threshold is read as a loop or seek and re-arms
// everything before this frame's crossings are evaluated. Every timestamp
// is checked on every call, so a large forward jump fires all the
// timestamps it skipped over in a single frame.
func (m *TriggerMonitor) Poll(prev, cur float64) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur < prev && prev > 1.0 {
		m.fired = make(map[float64]bool)
	}

	var out []float64
	for _, t := range m.timestamps {
		if prev <= t && t <= cur && !m.fired[t] {
			m.fired[t] = true
			m.scheduleRelease(t)
			out = append(out, t)
		}
	}
	return out
}

// scheduleRelease re-arms a fired timestamp after the grace delay, so
// small backward jitter in reported playback time cannot block it
// permanently. Pending releases are never cancelled; releasing a
// timestamp the loop reset already cleared is a no-op.
func (m *TriggerMonitor) scheduleRelease(t float64) {
	m.deferFunc(m.grace, func() {
		m.mu.Lock()
		delete(m.fired, t)
		m.mu.Unlock()
	})
}
