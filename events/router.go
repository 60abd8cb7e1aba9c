package events

// Handler reacts to the event types it declares
type Handler[T any] interface {
	// HandleEvent runs on the tick goroutine during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the types the handler is registered for
	EventTypes() []EventType
}

// Router fans queued events out to handlers, in registration order per type
// Not safe for concurrent use; only the tick goroutine dispatches
type Router[T any] struct {
	queue    *EventQueue
	handlers map[EventType][]Handler[T]

	// Unrouted, when set, sees every event no handler is registered for
	Unrouted func(GameEvent)
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		queue:    queue,
		handlers: make(map[EventType][]Handler[T]),
	}
}

// Register subscribes handler to each of its event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue, stamps each event with frame and delivers it
// Events pushed while dispatching are left for the next call
func (r *Router[T]) DispatchAll(ctx T, frame uint64) int {
	batch := r.queue.Consume()
	for i := range batch {
		batch[i].Frame = frame
		hs := r.handlers[batch[i].Type]
		if len(hs) == 0 {
			if r.Unrouted != nil {
				r.Unrouted(batch[i])
			}
			continue
		}
		for _, h := range hs {
			h.HandleEvent(ctx, batch[i])
		}
	}
	return len(batch)
}

// HandlerCount returns how many handlers listen for t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
