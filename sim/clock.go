package sim

import "time"

// Clock is the simulation's time source. It is read once per Step.
type Clock interface {
	Now() time.Duration
}

// WallClock measures time since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Tests and fixed-step drivers use it.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
