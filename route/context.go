package route

import (
	"fmt"

	"orthoroute/diagram"
	"orthoroute/geom"
)

// Route is the finalized result for one edge.
type Route struct {
	Edge  *diagram.Edge
	Path  geom.Path
	Style StyleKind

	StartSide, EndSide geom.Side
	StartSlot, EndSlot int

	// Trunk is the coordinate, along the style's exit axis, of the middle
	// segment. Only set for orthogonal styles.
	Trunk    int
	HasTrunk bool

	// Shared is the node at which the edge was merged with others, nil when
	// the edge was routed on its own.
	Shared *diagram.Node

	// Corner is the loop anchor of a self-edge.
	Corner geom.Corner
}

func (r Route) Merged() bool {
	return r.Shared != nil
}

// Exit is the axis the route leaves its start node on.
func (r Route) Exit() geom.Axis {
	return r.Style.Exit()
}

// Attachment returns the path endpoint and side of r at node n.
func (r Route) Attachment(n *diagram.Node) (geom.Point, geom.Side) {
	if r.Edge.Start == n {
		return r.Path.First(), r.StartSide
	}
	return r.Path.Last(), r.EndSide
}

// Context is the routing storage of a single pass. Entries are written once
// and never change until the Context is discarded.
type Context struct {
	routes []Route
	index  map[*diagram.Edge]int
	used   map[geom.Point]bool
}

func NewContext() *Context {
	return &Context{
		routes: make([]Route, 0),
		index:  make(map[*diagram.Edge]int),
		used:   make(map[geom.Point]bool),
	}
}

// Put stores r. It panics if the edge was already stored or if an endpoint of
// the path is not on the boundary of the corresponding node.
func (c *Context) Put(r Route) {
	e := r.Edge
	if _, ok := c.index[e]; ok {
		panic(fmt.Errorf("%w: %s", ErrAlreadyRouted, e))
	}
	if len(r.Path) < 2 {
		panic(fmt.Errorf("route: path of %s has %d points", e, len(r.Path)))
	}
	if !e.Start.Bounds.OnBoundary(r.Path.First()) {
		panic(fmt.Errorf("%w: %s does not start on %s", ErrNotAttached, r.Path.First(), e.Start))
	}
	if !e.End.Bounds.OnBoundary(r.Path.Last()) {
		panic(fmt.Errorf("%w: %s does not end on %s", ErrNotAttached, r.Path.Last(), e.End))
	}
	c.index[e] = len(c.routes)
	c.routes = append(c.routes, r)
	c.used[r.Path.First()] = true
	c.used[r.Path.Last()] = true
}

func (c *Context) Route(e *diagram.Edge) (Route, bool) {
	i, ok := c.index[e]
	if !ok {
		return Route{}, false
	}
	return c.routes[i], true
}

// Path returns the stored path of e, or nil.
func (c *Context) Path(e *diagram.Edge) geom.Path {
	if r, ok := c.Route(e); ok {
		return r.Path
	}
	return nil
}

func (c *Context) Has(e *diagram.Edge) bool {
	_, ok := c.index[e]
	return ok
}

func (c *Context) Len() int {
	return len(c.routes)
}

// Routes returns every stored route in the order it was written.
func (c *Context) Routes() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// EdgesAt returns the stored routes touching n.
func (c *Context) EdgesAt(n *diagram.Node) []Route {
	var out []Route
	for _, r := range c.routes {
		if r.Edge.Touches(n) {
			out = append(out, r)
		}
	}
	return out
}

// Parallel returns the stored routes connecting the same two nodes as e,
// excluding e itself.
func (c *Context) Parallel(e *diagram.Edge) []Route {
	var out []Route
	for _, r := range c.routes {
		if r.Edge != e && r.Edge.SameEnds(e) {
			out = append(out, r)
		}
	}
	return out
}

// IsFree reports whether no stored path starts or ends at p.
func (c *Context) IsFree(p geom.Point) bool {
	return !c.used[p]
}

// allocate returns the free slot on side s of n closest to the centre,
// skipping points in taken. When every slot is in use the extreme index is
// returned and clamped is true.
func (c *Context) allocate(n *diagram.Node, s geom.Side, taken ...geom.Point) (p geom.Point, index int, clamped bool) {
	for _, i := range SlotOrder(s) {
		pt := SlotPoint(n.Bounds, s, i)
		if !c.IsFree(pt) || containsPoint(taken, pt) {
			continue
		}
		return pt, i, false
	}
	i := MaxSlot(s)
	return SlotPoint(n.Bounds, s, i), i, true
}

func containsPoint(pts []geom.Point, p geom.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
