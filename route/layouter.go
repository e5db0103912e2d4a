package route

import (
	"fmt"
	"log/slog"
	"sort"

	"orthoroute/diagram"
	"orthoroute/geom"
)

// Layouter drives routing passes. A Layouter holds configuration only; every
// pass gets its own Context, so one Layouter can be reused across redraws.
type Layouter struct {
	opts Options
	log  *slog.Logger
}

func NewLayouter(options ...Option) *Layouter {
	l := &Layouter{
		opts: DefaultOptions(),
		log:  discardLogger(),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

func (l *Layouter) Options() Options {
	return l.opts
}

// Layout validates d and routes all of its edges.
func (l *Layouter) Layout(d *diagram.Diagram) (*Context, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("route: invalid diagram: %w", err)
	}
	return l.Route(d.Edges()), nil
}

// Route runs one pass over edges and returns the filled routing storage.
// Edges must be classified; an unclassified edge panics with ErrUnclassified.
func (l *Layouter) Route(edges []*diagram.Edge) *Context {
	p := &pass{
		ctx:  NewContext(),
		opts: l.opts,
		log:  l.log,
	}

	byClass := make(map[diagram.Priority][]*diagram.Edge)
	for _, e := range edges {
		pr := e.Priority()
		if pr == diagram.PriorityUnclassified {
			panic(fmt.Errorf("%w: %s", ErrUnclassified, e))
		}
		byClass[pr] = append(byClass[pr], e)
	}

	p.log.Debug("layout pass started", "edges", len(edges))
	for _, pr := range diagram.Priorities {
		class := byClass[pr]
		if len(class) == 0 {
			continue
		}
		p.log.Debug("routing class", "class", pr.String(), "edges", len(class))
		switch {
		case pr.Segmented():
			p.routeSegmented(class)
		case pr == diagram.PriorityDependency:
			p.routeStraight(class)
		case pr == diagram.PrioritySelfEdge:
			p.routeSelf(class)
		}
	}
	p.log.Debug("layout pass finished", "routed", p.ctx.Len())
	return p.ctx
}

// pass is the state of one Layouter.Route call.
type pass struct {
	ctx  *Context
	opts Options
	log  *slog.Logger
}

func (p *pass) chain(e *diagram.Edge) Chain {
	return ChainFor(e.Kind.PreferredAxis(), p.opts.Clearance)
}

func (p *pass) styleFor(e *diagram.Edge) Style {
	return p.chain(e).Resolve(e)
}

// byStartX orders edges by the x coordinate of their start node. Ties keep
// input order.
func byStartX(edges []*diagram.Edge) []*diagram.Edge {
	out := make([]*diagram.Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Bounds.X < out[j].Start.Bounds.X
	})
	return out
}

// routeSegmented handles one segmented priority class. Each iteration takes
// the first pending edge and either merges it with its partners at the start
// node, at the end node, or routes it alone.
func (p *pass) routeSegmented(edges []*diagram.Edge) {
	pending := byStartX(edges)
	for len(pending) > 0 {
		e := pending[0]
		rest := pending[1:]

		if partners := p.mergeSet(e, rest, true); len(partners) > 0 {
			group := append([]*diagram.Edge{e}, partners...)
			pending = without(pending, group)
			p.routeGroup(group, e.Start, true)
			continue
		}
		if partners := p.mergeSet(e, rest, false); len(partners) > 0 {
			group := append([]*diagram.Edge{e}, partners...)
			pending = without(pending, group)
			p.routeGroup(group, e.End, false)
			continue
		}

		pending = rest
		p.routeSingle(e)
	}
}

func without(edges, drop []*diagram.Edge) []*diagram.Edge {
	out := edges[:0:0]
	for _, e := range edges {
		found := false
		for _, d := range drop {
			if d == e {
				found = true
				break
			}
		}
		if !found {
			out = append(out, e)
		}
	}
	return out
}

// routeStraight handles dependencies: straight lines with allocator points,
// never merged.
func (p *pass) routeStraight(edges []*diagram.Edge) {
	for _, e := range byStartX(edges) {
		p.putStraight(e)
	}
}

func (p *pass) putStraight(e *diagram.Edge) {
	st := Straight{}
	from, to := st.sides(e)
	sp, si, sc := p.ctx.allocate(e.Start, from)
	ep, ei, ec := p.ctx.allocate(e.End, to, sp)
	p.warnClamp(e, sc, ec)
	p.ctx.Put(Route{
		Edge:      e,
		Path:      geom.Path{sp, ep},
		Style:     StyleStraight,
		StartSide: from,
		EndSide:   to,
		StartSlot: si,
		EndSlot:   ei,
	})
	p.log.Debug("straight edge", "edge", e.ID, "from", from.String(), "to", to.String())
}

func (p *pass) warnClamp(e *diagram.Edge, clamped ...bool) {
	for _, c := range clamped {
		if c {
			p.log.Warn("no free slot, clamped to extreme index", "edge", e.ID)
			return
		}
	}
}
