// File: ident.go
// Title: Identifier Rules
// Description: Character classes of identifiers shared by the lexer and by
//              registry name validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package ast

import "unicode"

// IsIdentStart reports whether r may begin an identifier
func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentPart reports whether r may continue an identifier
func IsIdentPart(r rune) bool {
	return IsIdentStart(r) || ('0' <= r && r <= '9') || r == '-'
}

// IsIdentifier reports whether s lexes as exactly one identifier
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !IsIdentStart(r) {
			return false
		}
		if !IsIdentPart(r) {
			return false
		}
	}
	return true
}
