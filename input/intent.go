package input

import "github.com/lixenwraith/vr-range/events"

// IntentType discriminates what a key means to the game
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents handled by the terminal loop
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Game intents forwarded to the tick goroutine as events
	IntentPress      // Discrete press on a signal, optionally pulsing an analog axis
	IntentValue      // Analog axis level
	IntentAim        // Weapon aim nudge
	IntentForceReset // Abandon the running round
)

// Intent is the parsed meaning of one terminal event
type Intent struct {
	Type      IntentType
	Signal    Signal  // IntentPress
	Magnitude float64 // IntentPress
	Analog    Signal  // IntentPress pulse or IntentValue axis, "" for none
	Value     float64 // Analog level
	Yaw       float64 // IntentAim, radians
	Pitch     float64 // IntentAim, radians
}

// Emitter queues events for the tick goroutine; engine.Scheduler satisfies it
type Emitter interface {
	Emit(eventType events.EventType, payload any)
}

// Emit forwards a game intent as events; system intents emit nothing
func (i *Intent) Emit(em Emitter) {
	switch i.Type {
	case IntentPress:
		if i.Analog != "" {
			em.Emit(events.EventInputValue, &events.InputValuePayload{Signal: string(i.Analog), Value: i.Value, Present: true})
		}
		em.Emit(events.EventInputPress, &events.InputPressPayload{Signal: string(i.Signal), Magnitude: i.Magnitude})
	case IntentValue:
		em.Emit(events.EventInputValue, &events.InputValuePayload{Signal: string(i.Analog), Value: i.Value, Present: true})
	case IntentAim:
		em.Emit(events.EventAimMove, &events.AimMovePayload{Yaw: i.Yaw, Pitch: i.Pitch})
	case IntentForceReset:
		em.Emit(events.EventForceReset, nil)
	}
}
