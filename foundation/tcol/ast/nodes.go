// File: nodes.go
// Title: TCOL AST Node Definitions
// Description: Node types for a parsed command line: the command itself,
//              positional and named parameters and literal values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2025-10-15 v0.2.0: Replaced object/method commands with procedure calls

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the node rendered back as command text
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number in runes (0-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ValueKind is the lexical class of a value token
type ValueKind int

const (
	ValueIdent ValueKind = iota
	ValueString
	ValueInteger
	ValueFloat
)

// String returns string representation of ValueKind
func (k ValueKind) String() string {
	switch k {
	case ValueIdent:
		return "Ident"
	case ValueString:
		return "String"
	case ValueInteger:
		return "Integer"
	case ValueFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Command is one parsed command line
type Command struct {
	Name   string   // Procedure name as typed
	Pos    Position // Position of the name
	Params []Param  // Parameters in source order
}

// Param is either a *PositionalParam or a *NamedParam
type Param interface {
	Node
	paramNode()
}

// PositionalParam is a bare value bound by slot
type PositionalParam struct {
	Value Value
}

// NamedParam is "-name" or "-name=value". Value is nil for a flag.
type NamedParam struct {
	Name    string
	Pos     Position // Position of the '-' marker
	NamePos Position // Position of the name
	Value   *Value
}

// Value is a literal in the command text
type Value struct {
	Kind ValueKind
	Raw  string // Source text including quotes
	Text string // Quotes stripped and escapes resolved for strings
	Pos  Position
}

func (*PositionalParam) paramNode() {}
func (*NamedParam) paramNode()      {}

// IsFlag reports whether the parameter was given without a value
func (n *NamedParam) IsFlag() bool {
	return n.Value == nil
}

// Positionals returns the positional parameters in source order
func (c *Command) Positionals() []*PositionalParam {
	var out []*PositionalParam
	for _, p := range c.Params {
		if pp, ok := p.(*PositionalParam); ok {
			out = append(out, pp)
		}
	}
	return out
}

// Named returns the named parameters in source order
func (c *Command) Named() []*NamedParam {
	var out []*NamedParam
	for _, p := range c.Params {
		if np, ok := p.(*NamedParam); ok {
			out = append(out, np)
		}
	}
	return out
}

func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, p := range c.Params {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

func (p *PositionalParam) String() string {
	return p.Value.String()
}

func (n *NamedParam) String() string {
	if n.Value == nil {
		return "-" + n.Name
	}
	return "-" + n.Name + "=" + n.Value.String()
}

func (v *Value) String() string {
	return v.Raw
}

func (c *Command) Position() Position         { return c.Pos }
func (p *PositionalParam) Position() Position { return p.Value.Pos }
func (n *NamedParam) Position() Position      { return n.Pos }
func (v *Value) Position() Position           { return v.Pos }

func (c *Command) Accept(visitor Visitor) interface{} {
	return visitor.VisitCommand(c)
}

func (p *PositionalParam) Accept(visitor Visitor) interface{} {
	return visitor.VisitPositional(p)
}

func (n *NamedParam) Accept(visitor Visitor) interface{} {
	return visitor.VisitNamed(n)
}

func (v *Value) Accept(visitor Visitor) interface{} {
	return visitor.VisitValue(v)
}
