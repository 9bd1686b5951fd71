// ============================================================================
// procline - typed procedure invocation from the command line
// ============================================================================
//
// Package:     sketch
// Description: A small drawing canvas used as demo host for procline. It
//              declares its procedures in an embedded definition file and
//              implements the invocation target.
// Author:      msto63
// Created:     2025-10-15
// License:     MIT
// ============================================================================

package sketch

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol/registry"
)

//go:embed procedures.yaml
var procedures []byte

// DefaultColor is used when a command gives no color
const DefaultColor = "black"

// Converters returns the converters the canvas procedures refer to
func Converters() registry.Converters {
	return registry.Converters{"point": ParsePoint}
}

// Source yields the canvas procedures
func Source() registry.Source {
	return registry.DataSource(procedures, registry.FormatYAML, Converters())
}

// Shape is one element drawn on the canvas
type Shape struct {
	Kind  string
	From  Point
	To    Point
	Color string
	Fill  bool
	Text  string
}

func (s Shape) String() string {
	switch s.Kind {
	case "box":
		if s.Fill {
			return fmt.Sprintf("box (%s) %s filled", s.From, s.Color)
		}
		return fmt.Sprintf("box (%s) %s", s.From, s.Color)
	case "line":
		return fmt.Sprintf("line (%s)-(%s) %s", s.From, s.To, s.Color)
	default:
		return fmt.Sprintf("text %q at (%s) %s", s.Text, s.From, s.Color)
	}
}

// Canvas holds shapes, a cursor and the current scale
type Canvas struct {
	shapes  []Shape
	history [][]Shape
	cursor  Point
	scale   float64
	out     io.Writer
	logger  *mdwlog.Logger
}

// New creates an empty canvas printing to out
func New(out io.Writer, logger *mdwlog.Logger) *Canvas {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	if out == nil {
		out = io.Discard
	}
	return &Canvas{
		scale:  1,
		out:    out,
		logger: logger.WithField("component", "sketch-canvas"),
	}
}

// Shapes returns a copy of the shapes on the canvas
func (c *Canvas) Shapes() []Shape {
	return append([]Shape(nil), c.shapes...)
}

// Cursor returns the cursor position
func (c *Canvas) Cursor() Point {
	return c.cursor
}

// Scale returns the current scale factor
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Call runs the canvas operation named by handle
func (c *Canvas) Call(handle any, args []any) error {
	name, _ := handle.(string)

	var err error
	switch name {
	case "draw":
		err = c.draw(args)
	case "line":
		err = c.line(args)
	case "text":
		err = c.text(args)
	case "move":
		err = c.move(args)
	case "scale":
		err = c.setScale(args)
	case "clear":
		err = c.clear()
	case "show":
		err = c.show(args)
	case "undo":
		err = c.undo(args)
	default:
		return errors.Errorf("canvas has no operation %v", handle)
	}
	if err != nil {
		return err
	}

	c.logger.Debug("canvas operation", mdwlog.Fields{"op": name, "shapes": len(c.shapes)})
	return nil
}

func (c *Canvas) draw(args []any) error {
	if len(args) != 4 {
		return argCount("draw", 4, len(args))
	}
	at := Point{X: args[0].(int), Y: args[1].(int)}
	c.add(Shape{
		Kind:  "box",
		From:  at.Scale(c.scale),
		Color: color(args[2]),
		Fill:  args[3].(bool),
	})
	return nil
}

func (c *Canvas) line(args []any) error {
	if len(args) != 3 {
		return argCount("line", 3, len(args))
	}
	c.add(Shape{
		Kind:  "line",
		From:  args[0].(Point).Scale(c.scale),
		To:    args[1].(Point).Scale(c.scale),
		Color: color(args[2]),
	})
	return nil
}

func (c *Canvas) text(args []any) error {
	if len(args) != 3 {
		return argCount("text", 3, len(args))
	}
	at := c.cursor
	if p, ok := args[1].(Point); ok {
		at = p.Scale(c.scale)
	}
	c.add(Shape{
		Kind:  "text",
		From:  at,
		Color: color(args[2]),
		Text:  args[0].(string),
	})
	return nil
}

func (c *Canvas) move(args []any) error {
	if len(args) != 3 {
		return argCount("move", 3, len(args))
	}
	to := Point{X: args[0].(int), Y: args[1].(int)}.Scale(c.scale)
	if args[2].(bool) {
		to = c.cursor.Add(to)
	}
	c.cursor = to
	return nil
}

func (c *Canvas) setScale(args []any) error {
	if len(args) != 1 {
		return argCount("scale", 1, len(args))
	}
	f := args[0].(float64)
	if f <= 0 {
		return errors.Errorf("scale factor must be positive, got %g", f)
	}
	c.scale = f
	return nil
}

func (c *Canvas) clear() error {
	if len(c.shapes) == 0 {
		return nil
	}
	c.history = append(c.history, c.shapes)
	c.shapes = nil
	return nil
}

func (c *Canvas) show(args []any) error {
	if len(args) != 1 {
		return argCount("show", 1, len(args))
	}
	fmt.Fprintf(c.out, "%d shapes, cursor (%s), scale %g\n", len(c.shapes), c.cursor, c.scale)
	if args[0].(bool) {
		for i, s := range c.shapes {
			fmt.Fprintf(c.out, "%3d  %s\n", i+1, s)
		}
	}
	return nil
}

func (c *Canvas) undo(args []any) error {
	if len(args) != 1 {
		return argCount("undo", 1, len(args))
	}
	steps := 1
	if n, ok := args[0].(int); ok {
		steps = n
	}
	if steps < 1 {
		return errors.Errorf("undo steps must be at least 1, got %d", steps)
	}
	if steps > len(c.history) {
		return errors.Errorf("cannot undo %d steps, only %d recorded", steps, len(c.history))
	}

	c.shapes = c.history[len(c.history)-steps]
	c.history = c.history[:len(c.history)-steps]
	return nil
}

// add records the current shapes for undo and appends s
func (c *Canvas) add(s Shape) {
	c.history = append(c.history, c.shapes)
	next := make([]Shape, len(c.shapes), len(c.shapes)+1)
	copy(next, c.shapes)
	c.shapes = append(next, s)
}

func color(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return DefaultColor
}

func argCount(op string, want, got int) error {
	return errors.Errorf("%s: expected %d arguments, got %d", op, want, got)
}

// Describe renders one line per procedure, for help output
func Describe(reg *registry.Registry) string {
	var b strings.Builder
	for _, p := range reg.Procedures() {
		fmt.Fprintf(&b, "%-40s %s\n", p.Signature(), p.Description())
	}
	return b.String()
}
