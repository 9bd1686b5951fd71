// File: visitor.go
// Title: TCOL AST Visitor Pattern Implementation
// Description: Visitor interface, a walking base visitor and the tree dump
//              used in diagnostics and snapshot tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2025-10-15 v0.2.0: Visitors for procedure call nodes, tree dump

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitCommand(cmd *Command) interface{}
	VisitPositional(param *PositionalParam) interface{}
	VisitNamed(param *NamedParam) interface{}
	VisitValue(value *Value) interface{}
}

// BaseVisitor returns nil for every node and does not descend.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitCommand(cmd *Command) interface{}              { return nil }
func (BaseVisitor) VisitPositional(param *PositionalParam) interface{} { return nil }
func (BaseVisitor) VisitNamed(param *NamedParam) interface{}           { return nil }
func (BaseVisitor) VisitValue(value *Value) interface{}                { return nil }

// Inspect traverses the tree rooted at node in source order, calling fn for
// each node. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Command:
		for _, p := range n.Params {
			Inspect(p, fn)
		}
	case *PositionalParam:
		Inspect(&n.Value, fn)
	case *NamedParam:
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	}
}

// Dump renders a node as an indented tree, one node per line
func Dump(node Node) string {
	d := &dumpVisitor{}
	node.Accept(d)
	return d.b.String()
}

type dumpVisitor struct {
	b     strings.Builder
	depth int
}

func (d *dumpVisitor) line(format string, args ...interface{}) {
	d.b.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumpVisitor) VisitCommand(cmd *Command) interface{} {
	d.line("Command %q @%s", cmd.Name, cmd.Pos)
	d.depth++
	for _, p := range cmd.Params {
		p.Accept(d)
	}
	d.depth--
	return nil
}

func (d *dumpVisitor) VisitPositional(param *PositionalParam) interface{} {
	d.line("Positional")
	d.depth++
	param.Value.Accept(d)
	d.depth--
	return nil
}

func (d *dumpVisitor) VisitNamed(param *NamedParam) interface{} {
	if param.IsFlag() {
		d.line("Named %q @%s flag", param.Name, param.Pos)
		return nil
	}
	d.line("Named %q @%s", param.Name, param.Pos)
	d.depth++
	param.Value.Accept(d)
	d.depth--
	return nil
}

func (d *dumpVisitor) VisitValue(value *Value) interface{} {
	if value.Kind == ValueString {
		d.line("%s %s text=%q @%s", value.Kind, value.Raw, value.Text, value.Pos)
		return nil
	}
	d.line("%s %s @%s", value.Kind, value.Raw, value.Pos)
	return nil
}
