package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventInputPress signals a discrete press on an input signal
	// Trigger: keyboard poller (space, f, s, p) | Consumer: input.Bridge -> input.Bus subscribers
	// Payload: *InputPressPayload
	EventInputPress EventType = iota

	// EventInputValue updates an analog input signal
	// Trigger: keyboard poller | Consumer: input.Bridge -> input.State | Payload: *InputValuePayload
	EventInputValue

	// EventAimMove nudges the weapon aim
	// Trigger: arrow keys | Consumer: weapon.Aim | Payload: *AimMovePayload
	EventAimMove

	// EventForceReset requests the running round be abandoned
	// Trigger: 'r' key | Consumer: round.Controller | Payload: nil
	EventForceReset

	// EventRoundStarted signals the Waiting -> Playing transition
	// Trigger: round.Controller | Consumer: render.HUD (banner) | Payload: *RoundStartedPayload
	EventRoundStarted

	// EventRoundFinished signals the Playing -> Finished transition
	// Trigger: round.Controller | Consumer: render.HUD (banner) | Payload: *RoundFinishedPayload
	EventRoundFinished

	// EventTargetExpired signals a spawned target timed out unhit
	// Trigger: round.Controller | Consumer: render.HUD | Payload: nil
	EventTargetExpired

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventInputPress:    "InputPress",
	EventInputValue:    "InputValue",
	EventAimMove:       "AimMove",
	EventForceReset:    "ForceReset",
	EventRoundStarted:  "RoundStarted",
	EventRoundFinished: "RoundFinished",
	EventTargetExpired: "TargetExpired",
}

// String returns the event name for logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     uint64 // Tick that consumed the event; zero until dispatched
	Timestamp time.Time
}
