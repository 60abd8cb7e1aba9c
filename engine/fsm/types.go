package fsm

import (
	"errors"
	"time"
)

// StateID is a unique identifier for a state node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

var (
	ErrUnknownState      = errors.New("unknown state")
	ErrDuplicateState    = errors.New("duplicate state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotInitialized    = errors.New("machine not initialized")
)

// Node represents one state and its lifecycle actions
// T is the context type passed to actions (e.g., *round.Controller)
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions, any may be nil
	OnEnter  func(ctx T)
	OnUpdate func(ctx T, dt time.Duration)
	OnExit   func(ctx T)
}
