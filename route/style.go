package route

import (
	"errors"
	"fmt"

	"orthoroute/diagram"
	"orthoroute/geom"
)

var (
	ErrUnclassified  = errors.New("route: edge has no priority class")
	ErrNotAttached   = errors.New("route: node is not attached to edge")
	ErrAlreadyRouted = errors.New("route: edge already routed in this pass")
)

// StyleKind names a segmentation style.
type StyleKind int

const (
	StyleStraight StyleKind = iota
	StyleHVH
	StyleVHV
	StyleSelfLoop
)

func (k StyleKind) String() string {
	switch k {
	case StyleStraight:
		return "straight"
	case StyleHVH:
		return "hvh"
	case StyleVHV:
		return "vhv"
	case StyleSelfLoop:
		return "self"
	}
	return "unknown"
}

// Orthogonal reports whether paths of this style have a trunk.
func (k StyleKind) Orthogonal() bool {
	return k == StyleHVH || k == StyleVHV
}

// Exit is the axis of the first segment of an orthogonal style. The trunk
// coordinate is measured along it.
func (k StyleKind) Exit() geom.Axis {
	if k == StyleVHV {
		return geom.Vertical
	}
	return geom.Horizontal
}

// Style decides, for one edge in isolation, which side of each node to use
// and a candidate path between the sides' midpoints.
type Style interface {
	Kind() StyleKind
	AttachedSide(e *diagram.Edge, n *diagram.Node) geom.Side
	IsPossible(e *diagram.Edge) bool
	Path(e *diagram.Edge) geom.Path
}

func mustTouch(e *diagram.Edge, n *diagram.Node) {
	if !e.Touches(n) {
		panic(fmt.Errorf("%w: %s not on %s", ErrNotAttached, n, e))
	}
}

// Straight joins the closest pair of side midpoints. It is always possible.
type Straight struct{}

func (Straight) Kind() StyleKind { return StyleStraight }

func (Straight) IsPossible(*diagram.Edge) bool { return true }

func (s Straight) AttachedSide(e *diagram.Edge, n *diagram.Node) geom.Side {
	mustTouch(e, n)
	from, to := s.sides(e)
	if n == e.Start {
		return from
	}
	return to
}

// sides scans all 16 side pairs; the first pair with the smallest distance wins.
func (Straight) sides(e *diagram.Edge) (geom.Side, geom.Side) {
	best := -1
	var from, to geom.Side
	for _, a := range geom.Sides {
		pa := e.Start.ConnectionPoint(a)
		for _, b := range geom.Sides {
			d := pa.DistanceSquared(e.End.ConnectionPoint(b))
			if best < 0 || d < best {
				best, from, to = d, a, b
			}
		}
	}
	return from, to
}

func (s Straight) Path(e *diagram.Edge) geom.Path {
	from, to := s.sides(e)
	return geom.Path{e.Start.ConnectionPoint(from), e.End.ConnectionPoint(to)}
}

// HVH leaves and enters through east/west sides: horizontal, vertical trunk,
// horizontal.
type HVH struct {
	Clearance int
}

func (HVH) Kind() StyleKind { return StyleHVH }

func (h HVH) AttachedSide(e *diagram.Edge, n *diagram.Node) geom.Side {
	mustTouch(e, n)
	forward := e.End.Center().X >= e.Start.Center().X
	if (n == e.Start) == forward {
		return geom.East
	}
	return geom.West
}

func (h HVH) IsPossible(e *diagram.Edge) bool {
	if e.IsSelf() {
		return false
	}
	a, b := e.Start.Bounds, e.End.Bounds
	return b.Left()-a.Right() >= h.Clearance || a.Left()-b.Right() >= h.Clearance
}

func (h HVH) Path(e *diagram.Edge) geom.Path {
	p0 := e.Start.ConnectionPoint(h.AttachedSide(e, e.Start))
	p1 := e.End.ConnectionPoint(h.AttachedSide(e, e.End))
	return orthogonalPath(p0, p1, geom.Horizontal, geom.Mid(p0.X, p1.X))
}

// VHV leaves and enters through north/south sides: vertical, horizontal
// trunk, vertical.
type VHV struct {
	Clearance int
}

func (VHV) Kind() StyleKind { return StyleVHV }

func (v VHV) AttachedSide(e *diagram.Edge, n *diagram.Node) geom.Side {
	mustTouch(e, n)
	forward := e.End.Center().Y >= e.Start.Center().Y
	if (n == e.Start) == forward {
		return geom.South
	}
	return geom.North
}

func (v VHV) IsPossible(e *diagram.Edge) bool {
	if e.IsSelf() {
		return false
	}
	a, b := e.Start.Bounds, e.End.Bounds
	return b.Top()-a.Bottom() >= v.Clearance || a.Top()-b.Bottom() >= v.Clearance
}

func (v VHV) Path(e *diagram.Edge) geom.Path {
	p0 := e.Start.ConnectionPoint(v.AttachedSide(e, e.Start))
	p1 := e.End.ConnectionPoint(v.AttachedSide(e, e.End))
	return orthogonalPath(p0, p1, geom.Vertical, geom.Mid(p0.Y, p1.Y))
}

// orthogonalPath builds the four point shape start, trunk, trunk, end. The
// trunk is a coordinate along exit.
func orthogonalPath(start, end geom.Point, exit geom.Axis, trunk int) geom.Path {
	if exit == geom.Horizontal {
		return geom.Path{start, geom.Pt(trunk, start.Y), geom.Pt(trunk, end.Y), end}
	}
	return geom.Path{start, geom.Pt(start.X, trunk), geom.Pt(end.X, trunk), end}
}

// Chain is an ordered list of styles; the first possible one is used.
type Chain []Style

// ChainFor returns the fallback order for edges preferring axis: HVH, VHV,
// Straight for horizontal and VHV, HVH, Straight for vertical.
func ChainFor(axis geom.Axis, clearance int) Chain {
	h, v := HVH{Clearance: clearance}, VHV{Clearance: clearance}
	if axis == geom.Vertical {
		return Chain{v, h, Straight{}}
	}
	return Chain{h, v, Straight{}}
}

// Resolve returns the first style in c that is possible for e. Straight is
// the fallback when none is.
func (c Chain) Resolve(e *diagram.Edge) Style {
	for _, s := range c {
		if s.IsPossible(e) {
			return s
		}
	}
	return Straight{}
}

// Next returns the first possible style after the one of kind k.
func (c Chain) Next(e *diagram.Edge, k StyleKind) (Style, bool) {
	seen := false
	for _, s := range c {
		if seen && s.IsPossible(e) {
			return s, true
		}
		if s.Kind() == k {
			seen = true
		}
	}
	return nil, false
}
