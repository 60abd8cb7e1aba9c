package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick's delta after a stall (window drag, debugger, GC pause)
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
