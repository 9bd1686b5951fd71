// File: doc.go
// Title: TCOL Executor Package Documentation
// Description: Documents invocations and the run hook into the host.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2025-10-15 v0.2.0: Invocations dispatched through a Target

/*
Package executor holds the Invocation produced for one command line and
the hook that hands it to the host.

An Invocation pairs a resolved procedure with the values bound to its
parameters. Parameters that are not optional and of boolean kind start out
bound to false; every other parameter starts unbound. Run checks that every
required parameter is bound, builds the argument list in declaration order
with nil for unbound optional parameters, and calls the host through the
Target interface:

	err := inv.Run(executor.TargetFunc(func(handle any, args []any) error {
		return canvas.Dispatch(handle.(string), args)
	}))

An Invocation runs at most once.
*/
package executor
