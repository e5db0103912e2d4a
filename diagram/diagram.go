// Package diagram is the node and edge model the router reads. Nodes carry a
// fixed bounding rectangle; edges carry their endpoints, kind and up to three
// text labels. Everything routing-specific about an edge (priority class,
// arrow decoration, preferred axis) is fixed when the edge is created.
package diagram

import (
	"errors"
	"fmt"

	"orthoroute/geom"
)

var (
	ErrDuplicateNode   = errors.New("diagram: duplicate node id")
	ErrNodeNotFound    = errors.New("diagram: node not found")
	ErrDuplicateEdge   = errors.New("diagram: duplicate edge id")
	ErrUnknownKind     = errors.New("diagram: unknown edge kind")
	ErrDegenerateNode  = errors.New("diagram: node must have positive width and height")
	ErrInvalidDocument = errors.New("diagram: invalid document")
)

type Node struct {
	ID     string
	Bounds geom.Rect
}

func (n *Node) ConnectionPoint(s geom.Side) geom.Point {
	return n.Bounds.ConnectionPoint(s)
}

func (n *Node) Center() geom.Point {
	return n.Bounds.Center()
}

func (n *Node) String() string {
	return n.ID
}

// Labels are the optional start, middle and end texts of an edge.
type Labels struct {
	Start  string
	Middle string
	End    string
}

func (l Labels) Empty() bool {
	return l.Start == "" && l.Middle == "" && l.End == ""
}

type Edge struct {
	ID     string
	Start  *Node
	End    *Node
	Kind   Kind
	Labels Labels

	priority Priority
}

// NewEdge classifies the edge once. Self-edges are always SELF_EDGE.
func NewEdge(id string, start, end *Node, kind Kind, labels Labels) *Edge {
	e := &Edge{ID: id, Start: start, End: end, Kind: kind, Labels: labels}
	switch {
	case !kind.Valid():
		e.priority = PriorityUnclassified
	case start == end:
		e.priority = PrioritySelfEdge
	default:
		e.priority = kind.Priority()
	}
	return e
}

func (e *Edge) Priority() Priority {
	return e.priority
}

func (e *Edge) IsSelf() bool {
	return e.Start == e.End
}

// Touches reports whether n is one of the endpoints of e.
func (e *Edge) Touches(n *Node) bool {
	return e.Start == n || e.End == n
}

// Other returns the endpoint of e opposite n.
func (e *Edge) Other(n *Node) *Node {
	if e.Start == n {
		return e.End
	}
	return e.Start
}

// SameEnds reports whether e and o connect the same pair of nodes, in either
// direction.
func (e *Edge) SameEnds(o *Edge) bool {
	return (e.Start == o.Start && e.End == o.End) || (e.Start == o.End && e.End == o.Start)
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s(%s->%s %s)", e.ID, e.Start.ID, e.End.ID, e.Kind)
}

// Diagram is an ordered collection of nodes and edges.
type Diagram struct {
	nodes  []*Node
	edges  []*Edge
	byID   map[string]*Node
	edgeID map[string]*Edge
}

func New() *Diagram {
	return &Diagram{
		nodes:  make([]*Node, 0),
		edges:  make([]*Edge, 0),
		byID:   make(map[string]*Node),
		edgeID: make(map[string]*Edge),
	}
}

func (d *Diagram) AddNode(id string, bounds geom.Rect) (*Node, error) {
	if _, ok := d.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %q %s", ErrDegenerateNode, id, bounds)
	}
	n := &Node{ID: id, Bounds: bounds}
	d.nodes = append(d.nodes, n)
	d.byID[id] = n
	return n, nil
}

// Connect adds an edge between two existing nodes.
func (d *Diagram) Connect(id, from, to string, kind Kind, labels Labels) (*Edge, error) {
	if _, ok := d.edgeID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateEdge, id)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: edge %q", ErrUnknownKind, id)
	}
	start, ok := d.byID[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q (edge %q)", ErrNodeNotFound, from, id)
	}
	end, ok := d.byID[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q (edge %q)", ErrNodeNotFound, to, id)
	}
	e := NewEdge(id, start, end, kind, labels)
	d.edges = append(d.edges, e)
	d.edgeID[id] = e
	return e, nil
}

func (d *Diagram) Node(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

func (d *Diagram) Edge(id string) (*Edge, bool) {
	e, ok := d.edgeID[id]
	return e, ok
}

func (d *Diagram) Nodes() []*Node {
	return d.nodes
}

func (d *Diagram) Edges() []*Edge {
	return d.edges
}

// Bounds returns the union of all node rectangles.
func (d *Diagram) Bounds() geom.Rect {
	if len(d.nodes) == 0 {
		return geom.Rect{}
	}
	r := d.nodes[0].Bounds
	for _, n := range d.nodes[1:] {
		r = r.Union(n.Bounds)
	}
	return r
}

// Validate checks the invariants the router relies on: every edge is
// classified and both endpoints belong to this diagram with a non-empty
// rectangle.
func (d *Diagram) Validate() error {
	var errs []error
	for _, n := range d.nodes {
		if n.Bounds.Empty() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDegenerateNode, n.ID))
		}
	}
	for _, e := range d.edges {
		if e.Priority() == PriorityUnclassified {
			errs = append(errs, fmt.Errorf("%w: edge %q", ErrUnknownKind, e.ID))
		}
		if e.Start == nil || d.byID[e.Start.ID] != e.Start {
			errs = append(errs, fmt.Errorf("%w: start of edge %q", ErrNodeNotFound, e.ID))
		}
		if e.End == nil || d.byID[e.End.ID] != e.End {
			errs = append(errs, fmt.Errorf("%w: end of edge %q", ErrNodeNotFound, e.ID))
		}
	}
	return errors.Join(errs...)
}
