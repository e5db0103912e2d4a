package route

import (
	"orthoroute/diagram"
	"orthoroute/geom"
)

// mergeSet returns the pending edges that must share e's attachment point at
// its start node (atStart) or end node: same class, same role at the node,
// same style and side, equal labels on that end and no stored edge attached
// in between.
func (p *pass) mergeSet(e *diagram.Edge, pending []*diagram.Edge, atStart bool) []*diagram.Edge {
	st := p.styleFor(e)
	if !st.Kind().Orthogonal() {
		return nil
	}
	n := e.End
	if atStart {
		n = e.Start
	}
	side := st.AttachedSide(e, n)

	var out []*diagram.Edge
	for _, f := range pending {
		if f.Priority() != e.Priority() || f.IsSelf() {
			continue
		}
		if (atStart && f.Start != n) || (!atStart && f.End != n) {
			continue
		}
		fs := p.styleFor(f)
		if fs.Kind() != st.Kind() || fs.AttachedSide(f, n) != side {
			continue
		}
		if !labelsMatch(e, f, atStart) {
			continue
		}
		if p.blocked(n, side, e, f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func labelsMatch(e, f *diagram.Edge, atStart bool) bool {
	if atStart {
		return e.Labels.Start == f.Labels.Start
	}
	return e.Labels.End == f.Labels.End
}

// blocked reports whether a stored edge attached to side s of n leads to a
// node lying between the far nodes of e and f along that side.
func (p *pass) blocked(n *diagram.Node, s geom.Side, e, f *diagram.Edge) bool {
	along := s.Along()
	a := e.Other(n).Center().Coord(along)
	b := f.Other(n).Center().Coord(along)
	for _, r := range p.ctx.EdgesAt(n) {
		if _, rs := r.Attachment(n); rs != s {
			continue
		}
		if geom.Between(r.Edge.Other(n).Center().Coord(along), a, b) {
			return true
		}
	}
	return false
}

// leg is the individual end of one edge in a group.
type leg struct {
	edge    *diagram.Edge
	node    *diagram.Node
	side    geom.Side
	point   geom.Point
	slot    int
	clamped bool
}

// plan is a group of edges sharing one attachment point, before the trunk is
// chosen. A single edge is a group of one sharing its start point.
type plan struct {
	style   Style
	exit    geom.Axis
	shared  *diagram.Node
	atStart bool
	side    geom.Side
	point   geom.Point
	slot    int
	clamped bool
	legs    []leg
}

func (p *pass) newPlan(st Style, edges []*diagram.Edge, n *diagram.Node, atStart bool) plan {
	pl := plan{
		style:   st,
		exit:    st.Kind().Exit(),
		shared:  n,
		atStart: atStart,
		side:    st.AttachedSide(edges[0], n),
	}
	pl.point, pl.slot, pl.clamped = p.ctx.allocate(n, pl.side)

	taken := []geom.Point{pl.point}
	for _, e := range edges {
		other := e.Other(n)
		lg := leg{edge: e, node: other, side: st.AttachedSide(e, other)}
		lg.point, lg.slot, lg.clamped = p.ctx.allocate(other, lg.side, taken...)
		taken = append(taken, lg.point)
		pl.legs = append(pl.legs, lg)
	}
	return pl
}

// nearest returns the leg whose point is closest to the shared point along
// the exit axis. Ties go to the earlier leg.
func (pl plan) nearest() leg {
	sc := pl.point.Coord(pl.exit)
	best := pl.legs[0]
	for _, lg := range pl.legs[1:] {
		if geom.Abs(lg.point.Coord(pl.exit)-sc) < geom.Abs(best.point.Coord(pl.exit)-sc) {
			best = lg
		}
	}
	return best
}

// inGap reports whether trunk t lies strictly between the shared point and
// the nearest individual point.
func (pl plan) inGap(t int) bool {
	return geom.Between(t, pl.point.Coord(pl.exit), pl.nearest().point.Coord(pl.exit))
}

func (pl plan) defaultTrunk() int {
	return geom.Mid(pl.point.Coord(pl.exit), pl.nearest().point.Coord(pl.exit))
}

// Trunk rules, in order of precedence.
const (
	trunkParallel = "parallel"
	trunkConflict = "conflict"
	trunkDefault  = "default"
)

// chooseTrunk picks the trunk coordinate of pl. ok is false when a parallel
// or conflict offset does not fit in the gap to the nearest node; the trunk
// returned then is the offset squeezed into the gap.
func (p *pass) chooseTrunk(pl plan) (trunk int, rule string, ok bool) {
	near := pl.nearest().point.Coord(pl.exit)
	dir := geom.Sign(near - pl.point.Coord(pl.exit))
	off := p.opts.TrunkOffset

	for _, lg := range pl.legs {
		for _, r := range p.ctx.Parallel(lg.edge) {
			if !r.HasTrunk || r.Exit() != pl.exit {
				continue
			}
			if t := r.Trunk + off*dir; pl.inGap(t) {
				return t, trunkParallel, true
			}
			if t := r.Trunk - off*dir; pl.inGap(t) {
				return t, trunkParallel, true
			}
			if t, found := pl.squeeze(r.Trunk, dir, off); found {
				return t, trunkParallel, false
			}
			return pl.defaultTrunk(), trunkDefault, false
		}
	}

	if r, found := p.closestConflict(pl); found {
		// Both directions move the trunk toward the start nodes.
		d := dir
		if pl.atStart {
			d = -dir
		}
		if t := r.Trunk + off*d; pl.inGap(t) {
			return t, trunkConflict, true
		}
		if t, found := pl.squeeze(r.Trunk, d, off); found {
			return t, trunkConflict, false
		}
		return pl.defaultTrunk(), trunkDefault, false
	}

	return pl.defaultTrunk(), trunkDefault, true
}

// squeeze returns the coordinate closest to base+off*dir that lies strictly
// inside the gap of pl and differs from base, trying the opposite direction
// when dir has no room left.
func (pl plan) squeeze(base, dir, off int) (int, bool) {
	sc, nc := pl.point.Coord(pl.exit), pl.nearest().point.Coord(pl.exit)
	lo, hi := min(sc, nc)+1, max(sc, nc)-1
	if lo > hi {
		return 0, false
	}
	for _, d := range []int{dir, -dir} {
		t := max(lo, min(hi, base+off*d))
		if d != 0 && geom.Sign(t-base) == d {
			return t, true
		}
	}
	return 0, false
}

// closestConflict finds the stored trunk crowding pl: a route attached to the
// same side of the shared node or of a leg node whose trunk lies within the
// gap. The closest one to the reference point wins. For aggregations the
// reference is the start of the edge, where the diamond sits; for every other
// class it is the end.
func (p *pass) closestConflict(pl plan) (Route, bool) {
	sc := pl.point.Coord(pl.exit)
	nc := pl.nearest().point.Coord(pl.exit)
	lo, hi := min(sc, nc), max(sc, nc)
	ref := p.reference(pl)

	var best Route
	bestDist := -1
	check := func(n *diagram.Node, s geom.Side) {
		for _, r := range p.ctx.EdgesAt(n) {
			if !r.HasTrunk || r.Exit() != pl.exit {
				continue
			}
			if _, rs := r.Attachment(n); rs != s {
				continue
			}
			if r.Trunk < lo || r.Trunk > hi {
				continue
			}
			d := geom.Abs(r.Trunk - ref)
			if bestDist < 0 || d < bestDist {
				best, bestDist = r, d
			}
		}
	}
	check(pl.shared, pl.side)
	for _, lg := range pl.legs {
		check(lg.node, lg.side)
	}
	return best, bestDist >= 0
}

func (p *pass) reference(pl plan) int {
	fromStart := pl.legs[0].edge.Priority() == diagram.PriorityAggregation
	if fromStart == pl.atStart {
		return pl.point.Coord(pl.exit)
	}
	return pl.nearest().point.Coord(pl.exit)
}

// commit stores every edge of pl with the given trunk.
func (p *pass) commit(pl plan, trunk int) {
	var shared *diagram.Node
	if len(pl.legs) > 1 {
		shared = pl.shared
	}
	for _, lg := range pl.legs {
		r := Route{
			Edge:     lg.edge,
			Style:    pl.style.Kind(),
			Trunk:    trunk,
			HasTrunk: true,
			Shared:   shared,
		}
		if pl.atStart {
			r.Path = orthogonalPath(pl.point, lg.point, pl.exit, trunk)
			r.StartSide, r.StartSlot = pl.side, pl.slot
			r.EndSide, r.EndSlot = lg.side, lg.slot
		} else {
			r.Path = orthogonalPath(lg.point, pl.point, pl.exit, trunk)
			r.StartSide, r.StartSlot = lg.side, lg.slot
			r.EndSide, r.EndSlot = pl.side, pl.slot
		}
		p.warnClamp(lg.edge, pl.clamped, lg.clamped)
		p.ctx.Put(r)
	}
}

// routeGroup stores a merged group sharing one point on n.
func (p *pass) routeGroup(group []*diagram.Edge, n *diagram.Node, atStart bool) {
	pl := p.newPlan(p.styleFor(group[0]), group, n, atStart)
	trunk, rule, ok := p.chooseTrunk(pl)
	if !ok {
		p.log.Debug("trunk offset squeezed", "node", n.ID, "trunk", trunk, "rule", rule)
	}
	p.log.Debug("merged group",
		"node", n.ID,
		"side", pl.side.String(),
		"at_start", atStart,
		"size", len(group),
		"style", pl.style.Kind().String(),
		"trunk", trunk,
		"rule", rule,
	)
	p.commit(pl, trunk)
}

// routeSingle stores an edge that merges with nothing. When the trunk of the
// preferred style would be pushed past the node it targets, the perpendicular
// style is tried before settling on the squeezed trunk.
func (p *pass) routeSingle(e *diagram.Edge) {
	chain := p.chain(e)
	st := chain.Resolve(e)
	if !st.Kind().Orthogonal() {
		p.log.Debug("no orthogonal style possible", "edge", e.ID)
		p.putStraight(e)
		return
	}

	pl := p.newPlan(st, []*diagram.Edge{e}, e.Start, true)
	trunk, rule, ok := p.chooseTrunk(pl)
	if !ok {
		if next, found := chain.Next(e, st.Kind()); found && next.Kind().Orthogonal() {
			alt := p.newPlan(next, []*diagram.Edge{e}, e.Start, true)
			if t, r, altOK := p.chooseTrunk(alt); altOK {
				p.log.Debug("switched axis", "edge", e.ID, "from", st.Kind().String(), "to", next.Kind().String(), "rule", r)
				p.commit(alt, t)
				return
			}
		}
		p.log.Debug("trunk offset squeezed", "edge", e.ID, "trunk", trunk, "rule", rule)
	}
	p.log.Debug("single edge", "edge", e.ID, "style", st.Kind().String(), "trunk", trunk, "rule", rule)
	p.commit(pl, trunk)
}
