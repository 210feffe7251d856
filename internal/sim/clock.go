package sim

import "time"

// Clock supplies elapsed and per-call delta time for the frame loop,
// backed by the monotonic reading of time.Now.
type Clock struct {
	start time.Time
	last  time.Time
}

func NewClock() *Clock {
	now := time.Now()
	return &Clock{start: now, last: now}
}

// Elapsed returns seconds since the clock was created.
func (c *Clock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// Delta returns seconds since the previous Delta call (zero on the first).
func (c *Clock) Delta() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
