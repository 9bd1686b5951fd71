// File: doc.go
// Title: Terminal Command Object Language (TCOL) Package Documentation
// Description: Documents the command line front-end that invokes typed
//              host procedures from one line of text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial TCOL implementation with parser and AST
// - 2025-10-15 v0.2.0: Procedure invocations with typed parameters

/*
Package tcol turns a line of text such as

	draw -color=red 100 200

into a call of a typed procedure the host has registered.

# Syntax

	command    := Ident (positional | named)*
	positional := value
	named      := '-' Ident ('=' value)?
	value      := String | Integer | Float | Ident

Strings are single or double quoted and may span whitespace. A named
parameter without a value is a flag and binds the boolean true. Tokens are
separated by spaces, tabs and line breaks, so a command may span lines.

# Binding

Positional values fill the procedure's parameters in declaration order.
Named parameters are matched by exact name. Values are bound in the order
they appear, so the last value given for a parameter wins.

	Kind      Accepts
	string    any value, quotes removed
	integer   base-10 signed integer
	float     decimal number
	boolean   a bare flag, or exactly true / false
	enum      one of the declared literals
	custom    whatever the parameter's converter accepts

Boolean parameters that are not optional are bound to false when omitted.
Optional parameters that are omitted reach the host as nil.

# Usage

	reg, err := registry.Build(registry.Definitions{
		{Name: "draw", Handle: drawFn, Params: []registry.ParamDefinition{
			{Name: "x", Kind: registry.KindInteger, Required: true},
			{Name: "y", Kind: registry.KindInteger, Required: true},
			registry.EnumStrings("color", "red", "green", "blue").AsOptional(),
		}},
	}, registry.Options{})
	if err != nil {
		return err
	}

	engine, err := tcol.NewEngine(reg)
	if err != nil {
		return err
	}

	inv, err := engine.Parse("draw -color=red 100 200")
	if err != nil {
		// err is an *mdwerror.Error with a code and a line/column
		return err
	}
	return inv.Run(target)

Parse and Run are separate so a host can inspect or log the bound values
before calling into its own code. Execute does both and times the run.

# Errors

Every error returned from Parse is an *error.Error from
foundation/core/error with one of the input codes (EMPTY_COMMAND,
SYNTAX_ERROR, UNRECOGNIZED_COMMAND, TOO_MANY_POSITIONAL_PARAMETERS,
UNKNOWN_NAMED_PARAMETER, TYPE_COERCION_FAILURE) and the position of the
offending token. A missing required parameter is reported by Run, at the
position of the command name, without calling the target.

# Concurrency

An Engine and its registry are owned by one goroutine. There is no internal
locking; alias creation must not run concurrently with parsing.
*/
package tcol
