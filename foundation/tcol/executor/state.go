// File: state.go
// Title: Invocation States
// Description: Life cycle of an invocation from parsing to its single run.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package executor

// State of an invocation
type State int

const (
	StateParsing State = iota
	StateResolved
	StateBinding
	StateBound
	StateInvoked
	StateError
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateParsing:
		return "parsing"
	case StateResolved:
		return "resolved"
	case StateBinding:
		return "binding"
	case StateBound:
		return "bound"
	case StateInvoked:
		return "invoked"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateInvoked || s == StateError
}
