package input

import (
	"log/slog"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/events"
)

// Bridge applies queued input events to the analog state and the press bus
// Runs in the dispatch phase, so presses land before the same tick's systems
type Bridge struct {
	state *State
	bus   *Bus
	log   *slog.Logger
}

// NewBridge creates a bridge writing into state and bus
func NewBridge(state *State, bus *Bus, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{state: state, bus: bus, log: logger}
}

// HandleEvent implements events.Handler
func (b *Bridge) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventInputValue:
		p, ok := ev.Payload.(*events.InputValuePayload)
		if !ok {
			b.log.Warn("bad input value payload", "frame", ev.Frame)
			return
		}
		if p.Present {
			b.state.Set(Signal(p.Signal), p.Value)
		} else {
			b.state.Clear(Signal(p.Signal))
		}

	case events.EventInputPress:
		p, ok := ev.Payload.(*events.InputPressPayload)
		if !ok {
			b.log.Warn("bad input press payload", "frame", ev.Frame)
			return
		}
		if n := b.bus.Press(Signal(p.Signal), p.Magnitude); n == 0 {
			b.log.Debug("press with no subscribers", "signal", p.Signal)
		}
	}
}

// EventTypes implements events.Handler
func (b *Bridge) EventTypes() []events.EventType {
	return []events.EventType{events.EventInputValue, events.EventInputPress}
}
