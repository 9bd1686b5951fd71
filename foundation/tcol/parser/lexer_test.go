// File: lexer_test.go
// Title: TCOL Lexer Tests
// Description: Tests for token classes, escapes and position tracking.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"identifier with hyphen", "test-params", []TokenType{TokenIdentifier, TokenEOF}},
		{"named value", "-x=1", []TokenType{TokenMarker, TokenIdentifier, TokenEquals, TokenInteger, TokenEOF}},
		{"negative numbers", "-1 -2.5", []TokenType{TokenInteger, TokenFloat, TokenEOF}},
		{"marker before letter", "-a", []TokenType{TokenMarker, TokenIdentifier, TokenEOF}},
		{"exponent", "1.5e-3 2.0E+4", []TokenType{TokenFloat, TokenFloat, TokenEOF}},
		{"underscore identifier", "_x1", []TokenType{TokenIdentifier, TokenEOF}},
		{"both quotes", `'a' "b"`, []TokenType{TokenString, TokenString, TokenEOF}},
		{"illegal stops", "a ; b", []TokenType{TokenIdentifier, TokenIllegal}},
		{"empty", "", []TokenType{TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []TokenType
			for _, tok := range NewLexer(tt.input).Tokenize() {
				got = append(got, tok.Type)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		raw   string
		text  string
	}{
		{`'it\'s'`, `'it\'s'`, "it's"},
		{`"a\\b"`, `"a\\b"`, `a\b`},
		{`"c\d"`, `"c\d"`, `c\d`},
		{`"it's"`, `"it's"`, "it's"},
		{`'say "hi"'`, `'say "hi"'`, `say "hi"`},
		{`''`, `''`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			require.Equal(t, TokenString, tok.Type)
			assert.Equal(t, tt.raw, tok.Value)
			assert.Equal(t, tt.text, tok.Text)
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := NewLexer("ä -b\n  'x y' 3").Tokenize()
	require.Len(t, tokens, 6)

	want := []struct {
		typ    TokenType
		offset int
		line   int
		column int
	}{
		{TokenIdentifier, 0, 1, 0},
		{TokenMarker, 3, 1, 2},
		{TokenIdentifier, 4, 1, 3},
		{TokenString, 8, 2, 2},
		{TokenInteger, 14, 2, 8},
		{TokenEOF, 15, 2, 9},
	}
	for i, w := range want {
		assert.Equal(t, w.typ, tokens[i].Type, "token %d", i)
		assert.Equal(t, w.offset, tokens[i].Position, "offset of token %d", i)
		assert.Equal(t, w.line, tokens[i].Line, "line of token %d", i)
		assert.Equal(t, w.column, tokens[i].Column, "column of token %d", i)
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "EOF", Token{Type: TokenEOF}.String())
	assert.Equal(t, "ILLEGAL(@)", Token{Type: TokenIllegal, Value: "@"}.String())
	assert.Equal(t, "INTEGER(42)", Token{Type: TokenInteger, Value: "42"}.String())
	assert.True(t, TokenFloat.IsValue())
	assert.False(t, TokenMarker.IsValue())
}
