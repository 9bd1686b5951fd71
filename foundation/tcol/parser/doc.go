// File: doc.go
// Title: TCOL Parser Package Documentation
// Description: Documents the command line lexer and parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2025-10-15 v0.2.0: Procedure call grammar

/*
Package parser turns one command line into an ast.Command.

Grammar:

	command         := Ident (positionalParam | namedParam)*
	positionalParam := value
	namedParam      := '-' Ident ('=' value)?
	value           := String | Integer | Float | Ident

Identifiers start with a letter or underscore and may continue with letters,
digits, underscores and hyphens, so "test-params" is one token. A '-'
directly followed by a digit starts a negative number; anywhere else it
introduces a named parameter. Strings are enclosed in single or double
quotes and understand the escapes \", \' and \\.

Input is normalized to Unicode NFC before lexing so that visually equal
names compare equal.
*/
package parser
