package route

import (
	"orthoroute/diagram"
	"orthoroute/geom"
)

// SelfLoop returns the five point loop of a self-edge around corner c of r.
// The loop leaves through the top or bottom side margin pixels from the
// corner and comes back through the adjacent east or west side. The margin
// is reduced for nodes too small to hold it.
func SelfLoop(r geom.Rect, c geom.Corner, margin int) geom.Path {
	m := max(1, min(margin, r.W/2, r.H/2))
	k := r.Corner(c)
	hx, vy := c.Horizontal(), c.Vertical()
	return geom.Path{
		geom.Pt(k.X-hx*m, k.Y),
		geom.Pt(k.X-hx*m, k.Y+vy*m),
		geom.Pt(k.X+hx*m, k.Y+vy*m),
		geom.Pt(k.X+hx*m, k.Y-vy*m),
		geom.Pt(k.X, k.Y-vy*m),
	}
}

func loopSides(c geom.Corner) (start, end geom.Side) {
	start, end = geom.North, geom.East
	if c.Vertical() > 0 {
		start = geom.South
	}
	if c.Horizontal() < 0 {
		end = geom.West
	}
	return start, end
}

// routeSelf places each self-edge at the first corner, scanning top-right
// counter-clockwise, whose two loop endpoints are unused. With no free
// corner the loop goes to the top-right.
func (p *pass) routeSelf(edges []*diagram.Edge) {
	for _, e := range edges {
		n := e.Start
		corner := geom.TopRight
		for _, c := range geom.Corners {
			loop := SelfLoop(n.Bounds, c, p.opts.SelfMargin)
			if p.ctx.IsFree(loop.First()) && p.ctx.IsFree(loop.Last()) {
				corner = c
				break
			}
		}
		start, end := loopSides(corner)
		p.ctx.Put(Route{
			Edge:      e,
			Path:      SelfLoop(n.Bounds, corner, p.opts.SelfMargin),
			Style:     StyleSelfLoop,
			StartSide: start,
			EndSide:   end,
			Corner:    corner,
		})
		p.log.Debug("self-edge placed", "edge", e.ID, "node", n.ID, "corner", corner.String())
	}
}
