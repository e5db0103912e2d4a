// Package render draws routed diagrams. It only reads the paths a routing
// pass produced and never feeds anything back into routing.
package render

import (
	"errors"

	"orthoroute/diagram"
	"orthoroute/geom"
	"orthoroute/route"
)

var ErrEmpty = errors.New("render: nothing to draw")

// Options control the PNG output.
type Options struct {
	// Scale is output pixels per diagram pixel.
	Scale float64
	// FontSize is the label size in points at 72 DPI.
	FontSize float64
	// Padding is the margin around the drawing in diagram pixels. Zero
	// selects the default, a negative value draws without a margin.
	Padding int
}

func DefaultOptions() Options {
	return Options{
		Scale:    1,
		FontSize: 12,
		Padding:  24,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	switch {
	case o.Padding == 0:
		o.Padding = def.Padding
	case o.Padding < 0:
		o.Padding = 0
	}
	return o
}

// extent returns the rectangle covering every node and every routed path.
func extent(d *diagram.Diagram, ctx *route.Context) (geom.Rect, bool) {
	if len(d.Nodes()) == 0 {
		return geom.Rect{}, false
	}
	r := d.Bounds()
	if ctx != nil {
		for _, rt := range ctx.Routes() {
			r = r.Union(rt.Path.Bounds())
		}
	}
	return r, true
}

// approach returns the tip of the path at one end together with the nearest
// distinct point before it, which fixes the direction of a decoration.
func approach(p geom.Path, atStart bool) (from, tip geom.Point, ok bool) {
	if len(p) < 2 {
		return geom.Point{}, geom.Point{}, false
	}
	if atStart {
		tip = p.First()
		for _, q := range p[1:] {
			if q != tip {
				return q, tip, true
			}
		}
		return geom.Point{}, tip, false
	}
	tip = p.Last()
	for i := len(p) - 2; i >= 0; i-- {
		if p[i] != tip {
			return p[i], tip, true
		}
	}
	return geom.Point{}, tip, false
}
