// File: doc.go
// Title: TCOL Abstract Syntax Tree Package Documentation
// Description: Documents the syntax tree produced by the command line parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2025-10-15 v0.2.0: Flat procedure call syntax

/*
Package ast defines the syntax tree for one command line.

A line such as

	draw -color=red 100 200

becomes a Command named "draw" holding, in source order, a NamedParam
"color" with the identifier value red and two PositionalParams with integer
values. Every node records its Position (line 1-based, column 0-based,
counted in runes) so later stages can point at the offending token.

Values keep their source text in Raw. For quoted strings Text holds the
contents with the quotes removed and escapes resolved; for every other kind
Text equals Raw.
*/
package ast
