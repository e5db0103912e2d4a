// Package geom holds the integer pixel geometry shared by the diagram model,
// the router and the renderers.
package geom

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Coord returns the coordinate of p along axis a.
func (p Point) Coord(a Axis) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Distance(o Point) float64 {
	return math.Sqrt(float64(p.DistanceSquared(o)))
}

func (p Point) DistanceSquared(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Midpoint rounds toward negative infinity so that results stay on the lattice.
func (p Point) Midpoint(o Point) Point {
	return Point{X: floorDiv(p.X+o.X, 2), Y: floorDiv(p.Y+o.Y, 2)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mid returns the lattice midpoint of two coordinates.
func Mid(a, b int) int {
	return floorDiv(a+b, 2)
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Between reports whether v lies strictly between a and b, in either order.
func Between(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return v > a && v < b
}

// Axis names the coordinate a segment travels along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (a Axis) Perpendicular() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}
