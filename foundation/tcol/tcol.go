// File: tcol.go
// Title: TCOL Main Interface and Engine
// Description: Provides the engine that turns one line of text into a
//              bound invocation. Integrates parser, binder, registry and
//              suggestion components behind a small API.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial TCOL engine implementation
// - 2025-10-15 v0.2.0: Typed procedure invocations, merged high-level engine

package tcol

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol/binder"
	"github.com/msto63/procline/foundation/tcol/executor"
	"github.com/msto63/procline/foundation/tcol/parser"
	"github.com/msto63/procline/foundation/tcol/registry"
	"github.com/msto63/procline/foundation/tcol/suggest"
)

// Engine represents the main TCOL engine that coordinates parsing and execution
type Engine struct {
	parser    *parser.Parser
	binder    *binder.Binder
	registry  *registry.Registry
	suggester *suggest.Suggester
	logger    *mdwlog.Logger
	options   Options
}

// Options configures the TCOL engine behavior
type Options struct {
	// Logger for TCOL operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxCommandLength limits input command length in bytes (default: 4096)
	MaxCommandLength int

	// SlowThreshold logs runs at warn when they take at least this long.
	// Zero disables the check.
	SlowThreshold time.Duration

	// Suggest configures Suggest
	Suggest suggest.Options
}

// Result represents the result of a TCOL command execution
type Result struct {
	// Command is the original command that was executed
	Command string

	// Invocation is the bound invocation, already run
	Invocation *executor.Invocation

	// ExecutionTime is the time spent in the target
	ExecutionTime time.Duration
}

// String returns a string representation of the result
func (r *Result) String() string {
	return fmt.Sprintf("OK: %s (%v)", r.Invocation.Summary(), r.ExecutionTime)
}

// NewEngine creates a TCOL engine over reg
func NewEngine(reg *registry.Registry, opts ...Options) (*Engine, error) {
	if reg == nil {
		return nil, mdwerror.New("registry cannot be nil").WithCode(mdwerror.CodeInternal)
	}

	options := Options{
		Logger:           mdwlog.GetDefault(),
		MaxCommandLength: parser.DefaultMaxInputLength,
	}
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxCommandLength > 0 {
			options.MaxCommandLength = provided.MaxCommandLength
		}
		options.SlowThreshold = provided.SlowThreshold
		options.Suggest = provided.Suggest
	}

	logger := options.Logger.WithField("component", "tcol-engine")

	engine := &Engine{
		parser: parser.New(parser.Options{
			Logger:         logger,
			MaxInputLength: options.MaxCommandLength,
		}),
		binder:    binder.New(reg, binder.Options{Logger: options.Logger}),
		registry:  reg,
		suggester: suggest.New(reg, options.Suggest),
		logger:    logger,
		options:   options,
	}

	logger.Debug("TCOL engine initialized", mdwlog.Fields{
		"maxCommandLength": options.MaxCommandLength,
		"procedures":       reg.Len(),
		"slowThreshold":    options.SlowThreshold,
	})
	return engine, nil
}

// Parse parses source and binds it to a procedure. On error no invocation
// is returned; the error carries the line and column of the offending token.
func (e *Engine) Parse(source string) (*executor.Invocation, error) {
	cmd, err := e.parser.Parse(source)
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}

	inv, err := e.binder.Bind(cmd)
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}

	e.logger.Debug("command parsed", mdwlog.Fields{
		"procedure":  inv.Procedure().Name(),
		"invocation": inv.ID(),
	})
	return inv, nil
}

// Validate parses source and checks that every required parameter is bound,
// without running anything
func (e *Engine) Validate(source string) (*executor.Invocation, error) {
	inv, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	if _, err := inv.Args(); err != nil {
		e.logger.LogError(err)
		return nil, err
	}
	return inv, nil
}

// Execute parses source and runs the invocation on target
func (e *Engine) Execute(source string, target executor.Target) (*Result, error) {
	inv, err := e.Parse(source)
	if err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("run").
		WithThreshold(e.options.SlowThreshold).
		WithField("procedure", inv.Procedure().Name()).
		WithField("invocation", inv.ID())

	err = inv.Run(target)
	elapsed := timer.Stop()
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}

	return &Result{
		Command:       source,
		Invocation:    inv,
		ExecutionTime: elapsed,
	}, nil
}

// CreateAlias makes newName a second name of the procedure called existing
func (e *Engine) CreateAlias(existing, newName string) (*registry.Procedure, error) {
	proc, ok := e.registry.Resolve(existing)
	if !ok {
		return nil, mdwerror.Newf("alias target not found: `%s`", existing).
			WithCode(mdwerror.CodeAliasTargetNotFound).
			WithDetail("target", existing)
	}
	return e.registry.CreateAlias(proc, newName)
}

// Suggest lists the procedures matching the first token of input
func (e *Engine) Suggest(input string) []suggest.Suggestion {
	return e.suggester.Suggest(input)
}

// Registry returns the procedure registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
