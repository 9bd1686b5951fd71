// ============================================================================
// procline - typed procedure invocation from the command line
// ============================================================================
//
// Package:     sketch
// Description: The point type and its command line converter
// Author:      msto63
// Created:     2025-10-15
// License:     MIT
// ============================================================================

package sketch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Point is a canvas coordinate, written "x;y" on the command line
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d;%d", p.X, p.Y)
}

// Scale multiplies both coordinates by f, rounding to the nearest integer
func (p Point) Scale(f float64) Point {
	return Point{
		X: int(math.Round(float64(p.X) * f)),
		Y: int(math.Round(float64(p.Y) * f)),
	}
}

// Add returns p shifted by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ParsePoint converts "x;y" into a Point. It has the signature of a
// registry converter.
func ParsePoint(text string) (any, error) {
	xs, ys, ok := strings.Cut(text, ";")
	if !ok {
		return nil, errors.Errorf("point %q: expected x;y", text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, errors.Wrapf(err, "point %q: bad x", text)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, errors.Wrapf(err, "point %q: bad y", text)
	}
	return Point{X: x, Y: y}, nil
}
