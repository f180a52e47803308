package core

import "time"

// maxFrameDelta caps the delta applied for a single frame so that pauses,
// debugger stops or window drags do not produce one giant simulation jump.
const maxFrameDelta = 250 * time.Millisecond

// FrameClock converts wall-clock frame boundaries into a dt plus a monotonic
// millisecond timestamp for the simulation. The timestamp only ever moves
// forward and only while Tick is being called.
type FrameClock struct {
	last    time.Time
	elapsed time.Duration
}

// NewFrameClock constructs a FrameClock. The first Tick reports a zero delta.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick advances the clock to now and returns the frame delta in seconds
// together with the accumulated monotonic time in milliseconds.
func (c *FrameClock) Tick() (dt float64, nowMS int64) {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}
	c.elapsed += delta
	return delta.Seconds(), c.elapsed.Milliseconds()
}
