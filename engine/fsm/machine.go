package fsm

import (
	"fmt"
	"time"
)

// Machine is a flat finite state machine with an explicit transition table
// Transitions may be requested from inside lifecycle actions; they take effect immediately
type Machine[T any] struct {
	nodes   map[StateID]*Node[T]
	allowed map[StateID]map[StateID]struct{}

	active      StateID
	timeInState time.Duration
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:   make(map[StateID]*Node[T]),
		allowed: make(map[StateID]map[StateID]struct{}),
	}
}

// AddState registers a node
func (m *Machine[T]) AddState(node Node[T]) error {
	if node.ID == StateNone {
		return fmt.Errorf("%w: id %d is reserved", ErrUnknownState, node.ID)
	}
	if _, exists := m.nodes[node.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateState, node.Name)
	}
	n := node
	m.nodes[node.ID] = &n
	return nil
}

// Allow adds from -> to to the transition table
func (m *Machine[T]) Allow(from, to StateID) {
	set, ok := m.allowed[from]
	if !ok {
		set = make(map[StateID]struct{})
		m.allowed[from] = set
	}
	set[to] = struct{}{}
}

// CanTransition checks the transition table
func (m *Machine[T]) CanTransition(from, to StateID) bool {
	_, ok := m.allowed[from][to]
	return ok
}

// Init enters the initial state, running its OnEnter
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("%w: initial id %d", ErrUnknownState, initial)
	}
	m.active = initial
	m.timeInState = 0
	if node.OnEnter != nil {
		node.OnEnter(ctx)
	}
	return nil
}

// Transition validates and performs active -> to: OnExit(old), switch, OnEnter(new)
// The new state is already active while its OnEnter runs
func (m *Machine[T]) Transition(ctx T, to StateID) error {
	if m.active == StateNone {
		return ErrNotInitialized
	}
	target, ok := m.nodes[to]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownState, to)
	}
	if !m.CanTransition(m.active, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Name(m.active), target.Name)
	}

	if current := m.nodes[m.active]; current.OnExit != nil {
		current.OnExit(ctx)
	}

	m.active = to
	m.timeInState = 0

	if target.OnEnter != nil {
		target.OnEnter(ctx)
	}
	return nil
}

// Update advances time in state and runs the active node's OnUpdate
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.active == StateNone {
		return
	}
	m.timeInState += dt
	if node := m.nodes[m.active]; node.OnUpdate != nil {
		node.OnUpdate(ctx, dt)
	}
}

// Active returns the current state
func (m *Machine[T]) Active() StateID {
	return m.active
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Name returns a state's name, or "" if unknown
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}
