package core

import "time"

// Clock converts scheduler timestamps into a monotonic scene time and counts
// frames. Timestamps that go backwards are clamped to the last seen value so
// the scene only ever observes non-decreasing time.
type Clock struct {
	start   time.Duration
	last    time.Duration
	started bool
	frame   uint64
}

// Advance records a new timestamp and bumps the frame counter. It returns the
// scene time in seconds since the first timestamp.
func (c *Clock) Advance(ts time.Duration) float64 {
	if !c.started {
		c.start = ts
		c.last = ts
		c.started = true
	}
	if ts > c.last {
		c.last = ts
	}
	c.frame++
	return c.Seconds()
}

// Seconds reports the current scene time.
func (c *Clock) Seconds() float64 {
	return (c.last - c.start).Seconds()
}

// Frame reports how many ticks have been observed.
func (c *Clock) Frame() uint64 { return c.frame }

// Reset forgets all timestamps.
func (c *Clock) Reset() { *c = Clock{} }
