package input

// PressHandler receives the magnitude of a press
type PressHandler func(magnitude float64)

// Subscription identifies a handler for Unsubscribe
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler PressHandler
}

// Bus fans press events out to subscribers in subscription order
// Owned by the tick goroutine
type Bus struct {
	subs   map[Signal][]subscriber
	nextID Subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[Signal][]subscriber)}
}

// Subscribe registers handler for presses on sig
func (b *Bus) Subscribe(sig Signal, handler PressHandler) Subscription {
	b.nextID++
	b.subs[sig] = append(b.subs[sig], subscriber{id: b.nextID, handler: handler})
	return b.nextID
}

// Unsubscribe removes a handler; unknown ids are ignored
func (b *Bus) Unsubscribe(id Subscription) {
	for sig, list := range b.subs {
		for i, s := range list {
			if s.id == id {
				b.subs[sig] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Press delivers a press to every subscriber of sig, returning how many were called
func (b *Bus) Press(sig Signal, magnitude float64) int {
	list := b.subs[sig]
	if len(list) == 0 {
		return 0
	}
	// Handlers may unsubscribe during delivery
	snapshot := make([]subscriber, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		s.handler(magnitude)
	}
	return len(snapshot)
}

// Subscribers returns the handler count for sig
func (b *Bus) Subscribers(sig Signal) int {
	return len(b.subs[sig])
}
