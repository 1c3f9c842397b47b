// Package fsm implements a finite state machine used to sequence the device
// command lifecycle
package fsm

import (
	"fmt"
)

// State represents a possible transition state for the FSM
type State string

// Transition represents an allowable transition from one state to another
type Transition struct {
	From State
	To   State
}

// T is a shorthand function for declaring allowable transitions during FSM creation
func T(from State, tos ...State) []Transition {
	var transitions []Transition
	for _, to := range tos {
		transitions = append(transitions, Transition{
			From: from,
			To:   to,
		})
	}
	return transitions
}

// Machine is a basic finite state machine with a fixed transition table
type Machine struct {
	current   State
	initial   State
	allowable map[State][]State
}

// MachineOption represents options to initially set up a machine
type MachineOption func(m *Machine) error

// WithTransitions adds allowable transitions declared with the T(from, to...)
// shorthand, e.g. `NewMachine(Idle, WithTransitions(T(Idle, Calculating), T(Calculating, Completed, Rejected)))`
func WithTransitions(transitions ...[]Transition) MachineOption {
	return func(m *Machine) error {
		for _, group := range transitions {
			for _, t := range group {
				m.allowable[t.From] = append(m.allowable[t.From], t.To)
			}
		}
		return nil
	}
}

// NewMachine returns a new Machine with configured options.  If you do not utilize any
// options, the machine will not have any configured transitions.
func NewMachine(initial State, opts ...MachineOption) (*Machine, error) {
	machine := &Machine{
		current:   initial,
		initial:   initial,
		allowable: map[State][]State{},
	}
	for _, opt := range opts {
		if err := opt(machine); err != nil {
			return nil, err
		}
	}
	return machine, nil
}

// State returns the current state of the Machine
func (m *Machine) State() State {
	return m.current
}

// Allowable checks whether a transition between two states is allowable
func (m *Machine) Allowable(from, to State) bool {
	return contains(to, m.allowable[from])
}

// Transition will change the current state of the machine if it is allowable
func (m *Machine) Transition(to State) error {
	if !m.Allowable(m.current, to) {
		return TransitionNotAllowed{Msg: fmt.Sprintf("cannot transition from state %s to %s", m.current, to)}
	}
	m.current = to
	return nil
}

// Reset returns the machine to its initial state
func (m *Machine) Reset() {
	m.current = m.initial
}

func contains(s State, all []State) bool {
	for _, a := range all {
		if s == a {
			return true
		}
	}
	return false
}

// TransitionNotAllowed is an error type caused by attempting to transition to a state that is
// not allowed by the FSM
type TransitionNotAllowed struct {
	Msg string
}

func (e TransitionNotAllowed) Error() string {
	return e.Msg
}
