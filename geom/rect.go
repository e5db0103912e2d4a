package geom

import "fmt"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Y grows downward.
type Rect struct {
	X, Y, W, H int
}

func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ConnectionPoint returns the midpoint of side s.
func (r Rect) ConnectionPoint(s Side) Point {
	c := r.Center()
	switch s {
	case North:
		return Point{X: c.X, Y: r.Top()}
	case South:
		return Point{X: c.X, Y: r.Bottom()}
	case East:
		return Point{X: r.Right(), Y: c.Y}
	case West:
		return Point{X: r.Left(), Y: c.Y}
	}
	panic(fmt.Sprintf("geom: invalid side %d", int(s)))
}

// SideLine returns side s as a segment, ordered left-to-right or top-to-bottom.
func (r Rect) SideLine(s Side) Line {
	switch s {
	case North:
		return Line{P0: Pt(r.Left(), r.Top()), P1: Pt(r.Right(), r.Top())}
	case South:
		return Line{P0: Pt(r.Left(), r.Bottom()), P1: Pt(r.Right(), r.Bottom())}
	case East:
		return Line{P0: Pt(r.Right(), r.Top()), P1: Pt(r.Right(), r.Bottom())}
	case West:
		return Line{P0: Pt(r.Left(), r.Top()), P1: Pt(r.Left(), r.Bottom())}
	}
	panic(fmt.Sprintf("geom: invalid side %d", int(s)))
}

func (r Rect) Corner(c Corner) Point {
	switch c {
	case TopRight:
		return Pt(r.Right(), r.Top())
	case TopLeft:
		return Pt(r.Left(), r.Top())
	case BottomLeft:
		return Pt(r.Left(), r.Bottom())
	case BottomRight:
		return Pt(r.Right(), r.Bottom())
	}
	panic(fmt.Sprintf("geom: invalid corner %d", int(c)))
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// OnBoundary reports whether p lies on one of the four sides of r.
func (r Rect) OnBoundary(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.Left() || p.X == r.Right() || p.Y == r.Top() || p.Y == r.Bottom()
}

// SideOf returns the side of r that p lies on. Corners resolve to North or
// South first.
func (r Rect) SideOf(p Point) (Side, bool) {
	if !r.OnBoundary(p) {
		return North, false
	}
	switch {
	case p.Y == r.Top():
		return North, true
	case p.Y == r.Bottom():
		return South, true
	case p.X == r.Right():
		return East, true
	}
	return West, true
}

func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.Left(), o.Left()), min(r.Top(), o.Top())
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Line is a segment between two lattice points.
type Line struct {
	P0, P1 Point
}

func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Horizontal() bool {
	return l.P0.Y == l.P1.Y
}
