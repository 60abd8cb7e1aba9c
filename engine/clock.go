package engine

import (
	"sync/atomic"
	"time"
)

// Clock is the time source for weapon cooldowns and tick deltas
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time with its monotonic component
type SystemClock struct{}

// NewSystemClock creates a SystemClock
func NewSystemClock() SystemClock { return SystemClock{} }

// Now implements Clock
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to; used by tests and scripted runs
type ManualClock struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds past base
}

// NewManualClock creates a clock reading start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

// Now implements Clock
func (c *ManualClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

// Advance moves the clock forward by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return c.base.Add(time.Duration(c.offset.Add(int64(d))))
}

// Set moves the clock to t, which may be before the current reading
func (c *ManualClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(c.base)))
}
