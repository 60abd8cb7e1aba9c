package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/status"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already looping
var ErrSchedulerRunning = errors.New("scheduler already running")

// SchedulerConfig configures a Scheduler; zero values take defaults
type SchedulerConfig struct {
	MaxDelta time.Duration
	Clock    Clock
	Status   *status.Registry
	Logger   *slog.Logger
}

type namedSystem struct {
	name   string
	system System
}

// Scheduler drives all game logic from a single goroutine
// Tick order is fixed: queued events -> systems in registration order -> frame observers
// Input callbacks therefore always land before the per-tick logic of the same tick
type Scheduler struct {
	queue     *events.EventQueue
	router    *events.Router[Frame]
	systems   []namedSystem
	observers []func(Frame)

	clock    Clock
	maxDelta time.Duration
	frame    uint64
	running  atomic.Bool

	log       *slog.Logger
	statTicks *atomic.Int64
}

// NewScheduler creates a scheduler consuming the given queue
func NewScheduler(queue *events.EventQueue, cfg SchedulerConfig) *Scheduler {
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = constants.MaxTickDelta
	}
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Scheduler{
		queue:     queue,
		router:    events.NewRouter[Frame](queue),
		clock:     cfg.Clock,
		maxDelta:  cfg.MaxDelta,
		log:       cfg.Logger,
		statTicks: cfg.Status.Ints.Get(status.KeyTicks),
	}
	s.router.Unrouted = func(ev events.GameEvent) {
		s.log.Debug("event without handler", "type", ev.Type.String(), "frame", ev.Frame)
	}
	return s
}

// RegisterEventHandler adds an event handler, must be called before Run
func (s *Scheduler) RegisterEventHandler(handler events.Handler[Frame]) {
	s.router.Register(handler)
}

// AddSystem appends a per-tick system, must be called before Run
func (s *Scheduler) AddSystem(name string, system System) {
	s.systems = append(s.systems, namedSystem{name: name, system: system})
}

// OnFrame registers an observer called after all systems, typically the renderer
func (s *Scheduler) OnFrame(fn func(Frame)) {
	s.observers = append(s.observers, fn)
}

// Emit queues an event for the next tick's dispatch phase
// Safe to call from any goroutine
func (s *Scheduler) Emit(eventType events.EventType, payload any) {
	s.queue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: s.clock.Now(),
	})
}

// Frame returns the number of completed ticks
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Tick advances the game by dt, clamped to [0, MaxDelta]
func (s *Scheduler) Tick(dt time.Duration) Frame {
	if dt < 0 {
		dt = 0
	}
	if dt > s.maxDelta {
		s.log.Debug("tick delta clamped", "delta", dt, "max", s.maxDelta)
		dt = s.maxDelta
	}

	s.frame++
	f := Frame{Number: s.frame, Delta: dt, Now: s.clock.Now()}

	s.router.DispatchAll(f, s.frame)

	for _, ns := range s.systems {
		ns.system.Update(dt)
	}

	s.statTicks.Store(int64(s.frame))

	for _, fn := range s.observers {
		fn(f)
	}
	return f
}

// Run ticks on the given interval until ctx is done
// The delta handed to Tick is measured from the clock, not assumed from the interval
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer s.running.Store(false)

	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := s.clock.Now()
			dt := now.Sub(last)
			last = now
			s.Tick(dt)
		}
	}
}
