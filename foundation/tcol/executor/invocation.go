// File: invocation.go
// Title: TCOL Invocation
// Description: The bound arguments of one command line, typed accessors
//              and the run hook that calls into the host exactly once.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package executor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
	"github.com/msto63/procline/foundation/tcol/registry"
)

// Target is the host side of an invocation. handle is the procedure's
// opaque handle and args holds one entry per declared parameter, nil for
// unbound optional parameters.
type Target interface {
	Call(handle any, args []any) error
}

// TargetFunc adapts a function to Target
type TargetFunc func(handle any, args []any) error

// Call calls f
func (f TargetFunc) Call(handle any, args []any) error {
	return f(handle, args)
}

// Invocation is a procedure together with its bound arguments
type Invocation struct {
	id     uuid.UUID
	proc   *registry.Procedure
	pos    mdwast.Position
	values map[string]any
	state  State
}

// New creates an invocation of proc for a command whose name appeared at
// pos. Booleans that are not optional are bound to false.
func New(proc *registry.Procedure, pos mdwast.Position) *Invocation {
	inv := &Invocation{
		id:     uuid.New(),
		proc:   proc,
		pos:    pos,
		values: make(map[string]any, proc.NumParams()),
		state:  StateResolved,
	}
	for _, p := range proc.Params() {
		if p.Kind == registry.KindBoolean && !p.Optional {
			inv.values[p.Name] = false
		}
	}
	return inv
}

// ID identifies the invocation in logs
func (inv *Invocation) ID() string {
	return inv.id.String()
}

// Procedure returns the resolved procedure
func (inv *Invocation) Procedure() *registry.Procedure {
	return inv.proc
}

// Position returns the position of the command name
func (inv *Invocation) Position() mdwast.Position {
	return inv.pos
}

// State returns the current life cycle state
func (inv *Invocation) State() State {
	return inv.state
}

// Put binds value to the parameter name, replacing an earlier binding.
// Bindings are fixed once the invocation is bound.
func (inv *Invocation) Put(name string, value any) error {
	if inv.state.Terminal() {
		return mdwerror.Newf("invocation of `%s` is %s", inv.proc.Name(), inv.state).
			WithCode(mdwerror.CodeInvocationConsumed)
	}
	if inv.state == StateBound {
		return mdwerror.Newf("invocation of `%s` is already bound", inv.proc.Name()).
			WithCode(mdwerror.CodeInvocationSealed).
			WithDetail("parameter", name)
	}
	if _, ok := inv.proc.Param(name); !ok {
		return mdwerror.Newf("unknown parameter: `%s`", name).
			WithCode(mdwerror.CodeUnknownNamedParameter)
	}
	inv.values[name] = value
	inv.state = StateBinding
	return nil
}

// MarkBound ends binding
func (inv *Invocation) MarkBound() {
	if !inv.state.Terminal() {
		inv.state = StateBound
	}
}

// Fail moves a not yet invoked invocation into the error state
func (inv *Invocation) Fail() {
	if inv.state != StateInvoked {
		inv.state = StateError
	}
}

// Has reports whether name is bound
func (inv *Invocation) Has(name string) bool {
	_, ok := inv.values[name]
	return ok
}

// Get returns the value bound to name
func (inv *Invocation) Get(name string) (any, bool) {
	v, ok := inv.values[name]
	return v, ok
}

// String returns a bound string argument
func (inv *Invocation) String(name string) (string, bool) {
	return Arg[string](inv, name)
}

// Int returns a bound integer argument
func (inv *Invocation) Int(name string) (int, bool) {
	return Arg[int](inv, name)
}

// Float returns a bound float argument
func (inv *Invocation) Float(name string) (float64, bool) {
	return Arg[float64](inv, name)
}

// Bool returns a bound boolean argument
func (inv *Invocation) Bool(name string) (bool, bool) {
	return Arg[bool](inv, name)
}

// Arg returns the argument bound to name if it has type T
func Arg[T any](inv *Invocation, name string) (T, bool) {
	var zero T
	v, ok := inv.values[name]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Args checks that every required parameter is bound and returns the
// arguments in declaration order, nil for unbound optional parameters
func (inv *Invocation) Args() ([]any, error) {
	params := inv.proc.Params()
	args := make([]any, len(params))
	for i, p := range params {
		v, ok := inv.values[p.Name]
		if !ok {
			if p.Optional {
				continue
			}
			return nil, mdwerror.Newf("parameter '%s' is required but has value null", p.Name).
				WithCode(mdwerror.CodeMissingRequiredParameter).
				WithPosition(inv.pos.Line, inv.pos.Column).
				WithDetail("procedure", inv.proc.Name()).
				WithDetail("parameter", p.Name)
		}
		args[i] = v
	}
	return args, nil
}

// Run calls target with the procedure handle and the arguments. It fails
// without calling target when a required parameter is unbound, and an
// invocation that already ran is rejected.
func (inv *Invocation) Run(target Target) error {
	switch inv.state {
	case StateInvoked:
		return mdwerror.Newf("invocation of `%s` already ran", inv.proc.Name()).
			WithCode(mdwerror.CodeInvocationConsumed)
	case StateError:
		return mdwerror.Newf("invocation of `%s` failed to bind", inv.proc.Name()).
			WithCode(mdwerror.CodeInternal)
	}
	if target == nil {
		return mdwerror.New("no target to run on").WithCode(mdwerror.CodeInternal)
	}

	args, err := inv.Args()
	if err != nil {
		return err
	}

	inv.state = StateInvoked
	if err := target.Call(inv.proc.Handle(), args); err != nil {
		return mdwerror.Wrapf(err, "%s", inv.proc.Name()).
			WithDetail("procedure", inv.proc.Name()).
			WithDetail("invocation", inv.ID())
	}
	return nil
}

// Summary renders the procedure name and every argument in declaration
// order, e.g. "draw(x=100, y=200, color=<absent>)"
func (inv *Invocation) Summary() string {
	var b strings.Builder
	b.WriteString(inv.proc.Name())
	b.WriteByte('(')
	for i, p := range inv.proc.Params() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		v, ok := inv.values[p.Name]
		switch {
		case !ok:
			b.WriteString("<absent>")
		case p.Kind == registry.KindString:
			fmt.Fprintf(&b, "%q", v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteByte(')')
	return b.String()
}
