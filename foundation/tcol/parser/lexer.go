// File: lexer.go
// Title: TCOL Lexical Analyzer (Tokenizer)
// Description: Converts a command line into tokens with line, column and
//              byte offset information for error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2025-10-15 v0.2.0: Rune based scanning, parameter marker and numbers

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // draw, line-width, _x
	TokenString     // "text" or 'text'
	TokenInteger    // 42, -7
	TokenFloat      // 1.5, -0.25e3

	// Operators
	TokenMarker // -
	TokenEquals // =
)

const eof rune = -1

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Source text of the token
	Text     string    // String contents, or the reason for an illegal token
	Position int       // Byte offset in input
	Line     int       // Line number (1-based)
	Column   int       // Column number in runes (0-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenInteger:
		return "INTEGER"
	case TokenFloat:
		return "FLOAT"
	case TokenMarker:
		return "MARKER"
	case TokenEquals:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}

// IsValue reports whether the token can stand as a parameter value
func (tt TokenType) IsValue() bool {
	switch tt {
	case TokenIdentifier, TokenString, TokenInteger, TokenFloat:
		return true
	default:
		return false
	}
}

// Lexer performs lexical analysis of a command line
type Lexer struct {
	input    string // Input string
	position int    // Byte offset of ch
	readPos  int    // Byte offset after ch
	ch       rune   // Current rune, eof at end of input
	line     int    // Line of ch (1-based)
	column   int    // Column of ch (0-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.decode()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Position: l.position, Line: l.line, Column: l.column}

	switch {
	case l.ch == eof:
		tok.Type = TokenEOF
	case l.ch == '=':
		tok.Type = TokenEquals
		tok.Value = "="
		l.readChar()
	case l.ch == '-' && isDigit(l.peekChar()):
		l.readNumber(&tok)
	case l.ch == '-':
		tok.Type = TokenMarker
		tok.Value = "-"
		l.readChar()
	case l.ch == '"' || l.ch == '\'':
		l.readString(&tok)
	case isLetter(l.ch):
		tok.Type = TokenIdentifier
		tok.Value = l.readIdentifier()
		tok.Text = tok.Value
	case isDigit(l.ch):
		l.readNumber(&tok)
	default:
		tok.Type = TokenIllegal
		tok.Value = string(l.ch)
		tok.Text = fmt.Sprintf("unexpected character %q", l.ch)
		l.readChar()
	}

	return tok
}

// Tokenize returns all tokens up to and including EOF. It stops at the
// first illegal token and returns it last.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenIllegal {
			return tokens
		}
	}
}

// decode loads the rune at position
func (l *Lexer) decode() {
	if l.position >= len(l.input) {
		l.ch = eof
		l.readPos = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.position:])
	l.ch = r
	l.readPos = l.position + w
}

// readChar advances to the next rune
func (l *Lexer) readChar() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.position = l.readPos
	l.decode()
}

// peekChar returns the rune after ch without advancing
func (l *Lexer) peekChar() rune {
	return l.peekAt(l.readPos)
}

func (l *Lexer) peekAt(offset int) rune {
	if offset >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[offset:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer or float. Trailing identifier characters or a
// dangling decimal point make the whole run an illegal token.
func (l *Lexer) readNumber(tok *Token) {
	start := l.position
	tok.Type = TokenInteger

	if l.ch == '-' {
		l.readChar()
	}
	l.readDigits()

	if l.ch == '.' && isDigit(l.peekChar()) {
		tok.Type = TokenFloat
		l.readChar()
		l.readDigits()

		if l.ch == 'e' || l.ch == 'E' {
			next := l.peekChar()
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(l.readPos+1))) {
				l.readChar()
				if l.ch == '+' || l.ch == '-' {
					l.readChar()
				}
				l.readDigits()
			}
		}
	}

	if isIdentChar(l.ch) || l.ch == '.' {
		for isIdentChar(l.ch) || l.ch == '.' {
			l.readChar()
		}
		tok.Type = TokenIllegal
		tok.Value = l.input[start:l.position]
		tok.Text = fmt.Sprintf("malformed number `%s`", tok.Value)
		return
	}

	tok.Value = l.input[start:l.position]
	tok.Text = tok.Value
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) {
		l.readChar()
	}
}

// readString reads a quoted string starting at the opening quote
func (l *Lexer) readString(tok *Token) {
	start := l.position
	quote := l.ch
	l.readChar()

	var b strings.Builder
	for {
		switch {
		case l.ch == eof:
			tok.Type = TokenIllegal
			tok.Value = l.input[start:l.position]
			tok.Text = "unterminated string"
			return
		case l.ch == quote:
			l.readChar()
			tok.Type = TokenString
			tok.Value = l.input[start:l.position]
			tok.Text = b.String()
			return
		case l.ch == '\\' && isEscapable(l.peekChar()):
			l.readChar()
			b.WriteRune(l.ch)
			l.readChar()
		default:
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isLetter(ch rune) bool {
	return mdwast.IsIdentStart(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return mdwast.IsIdentPart(ch)
}

func isEscapable(ch rune) bool {
	return ch == '"' || ch == '\'' || ch == '\\'
}
