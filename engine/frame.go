package engine

import "time"

// Frame describes one scheduler tick; handed to event handlers and frame observers
type Frame struct {
	Number uint64
	Delta  time.Duration
	Now    time.Time
}

// System is a per-tick update step
type System interface {
	Update(dt time.Duration)
}

// SystemFunc adapts a function to System
type SystemFunc func(dt time.Duration)

// Update calls f(dt)
func (f SystemFunc) Update(dt time.Duration) { f(dt) }
