package geom

import "strings"

// Path is an ordered polyline.
type Path []Point

func (p Path) First() Point { return p[0] }
func (p Path) Last() Point  { return p[len(p)-1] }

// Orthogonal reports whether no segment of p is diagonal. Zero-length
// segments are allowed.
func (p Path) Orthogonal() bool {
	for i := 1; i < len(p); i++ {
		if p[i].X != p[i-1].X && p[i].Y != p[i-1].Y {
			return false
		}
	}
	return true
}

func (p Path) Segments() []Line {
	if len(p) < 2 {
		return nil
	}
	out := make([]Line, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, Line{P0: p[i-1], P1: p[i]})
	}
	return out
}

func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}

// Middle returns the midpoint of the segment that contains the arc-length
// midpoint of p.
func (p Path) Middle() Point {
	half := p.Length() / 2
	walked := 0.0
	for _, s := range p.Segments() {
		l := s.Length()
		if walked+l >= half {
			return s.Midpoint()
		}
		walked += l
	}
	return p.Last()
}

func (p Path) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{X: p[0].X, Y: p[0].Y}
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, "-")
}
