// File: binder.go
// Title: TCOL Semantic Binder
// Description: Resolves a parsed command against the registry and binds its
//              parameters, in source order, to a new invocation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

// Package binder turns an ast.Command into an executor.Invocation.
//
// Positional values fill the procedure's parameters in declaration order;
// every positional token takes the next slot whatever its kind. Named
// parameters are looked up by exact name. Parameters are processed in the
// order they appear on the line, so a named value given after a positional
// value for the same parameter replaces it.
package binder

import (
	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
	"github.com/msto63/procline/foundation/tcol/coerce"
	"github.com/msto63/procline/foundation/tcol/executor"
	"github.com/msto63/procline/foundation/tcol/registry"
)

// Resolver is the part of the registry the binder needs
type Resolver interface {
	Resolve(name string) (*registry.Procedure, bool)
}

// Options configures binder behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Binder binds commands against a registry
type Binder struct {
	resolver Resolver
	logger   *mdwlog.Logger
}

// New creates a binder resolving names through resolver
func New(resolver Resolver, opts Options) *Binder {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Binder{
		resolver: resolver,
		logger:   opts.Logger.WithField("component", "tcol-binder"),
	}
}

// Bind resolves cmd and binds its parameters. On error no invocation is
// returned.
func (b *Binder) Bind(cmd *mdwast.Command) (*executor.Invocation, error) {
	proc, ok := b.resolver.Resolve(cmd.Name)
	if !ok {
		return nil, mdwerror.Newf("unrecognized command: `%s`", cmd.Name).
			WithCode(mdwerror.CodeUnrecognizedCommand).
			WithPosition(cmd.Pos.Line, cmd.Pos.Column).
			WithDetail("command", cmd.Name)
	}

	inv := executor.New(proc, cmd.Pos)
	slot := 0

	for _, node := range cmd.Params {
		var err error
		switch param := node.(type) {
		case *mdwast.PositionalParam:
			err = b.bindPositional(inv, proc, slot, param)
			slot++
		case *mdwast.NamedParam:
			err = b.bindNamed(inv, proc, param)
		}
		if err != nil {
			inv.Fail()
			return nil, err
		}
	}

	inv.MarkBound()
	b.logger.Debug("command bound", mdwlog.Fields{
		"procedure":  proc.Name(),
		"invocation": inv.ID(),
	})
	return inv, nil
}

func (b *Binder) bindPositional(inv *executor.Invocation, proc *registry.Procedure, slot int, node *mdwast.PositionalParam) error {
	param, ok := proc.ParamAt(slot)
	if !ok {
		return mdwerror.Newf("too many positional parameters: `%s` takes %d", proc.Name(), proc.NumParams()).
			WithCode(mdwerror.CodeTooManyPositionalParameters).
			WithPosition(node.Value.Pos.Line, node.Value.Pos.Column).
			WithDetail("procedure", proc.Name())
	}

	value, err := coerce.Value(param, &node.Value, node.Value.Pos)
	if err != nil {
		return err
	}
	return inv.Put(param.Name, value)
}

func (b *Binder) bindNamed(inv *executor.Invocation, proc *registry.Procedure, node *mdwast.NamedParam) error {
	param, ok := proc.Param(node.Name)
	if !ok {
		return mdwerror.Newf("unknown parameter: `%s`", node.Name).
			WithCode(mdwerror.CodeUnknownNamedParameter).
			WithPosition(node.NamePos.Line, node.NamePos.Column).
			WithDetail("procedure", proc.Name())
	}

	value, err := coerce.Value(param, node.Value, node.Pos)
	if err != nil {
		return err
	}
	return inv.Put(param.Name, value)
}
