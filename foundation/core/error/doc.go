// Package error provides the structured error type used across procline.
//
// Package: error
// Title: procline Error Handling
// Description: Errors carry a Code for programmatic handling, a Severity that
//              separates input mistakes from setup problems, an optional
//              source position (line 1-based, column 0-based) of the token
//              that caused them, and a cause chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Usage:
//
//	import mdwerror "github.com/msto63/procline/foundation/core/error"
//
//	err := mdwerror.New("unrecognized command: `frobnicate`").
//		WithCode(mdwerror.CodeUnrecognizedCommand).
//		WithPosition(1, 0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeUnrecognizedCommand) {
//		line, column, _ := mdwerror.GetPosition(err)
//		fmt.Printf("at %d:%d\n", line, column)
//	}
package error
