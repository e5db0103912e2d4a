package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"orthoroute/diagram"
	"orthoroute/geom"
	"orthoroute/route"
)

const (
	arrowSize  = 10.0
	arrowAngle = 0.5
)

type pngCanvas struct {
	dc     *gg.Context
	origin geom.Point
	scale  float64
}

func (c *pngCanvas) xy(p geom.Point) (float64, float64) {
	return float64(p.X-c.origin.X) * c.scale, float64(p.Y-c.origin.Y) * c.scale
}

// Image draws d and the routes stored in ctx.
func Image(d *diagram.Diagram, ctx *route.Context, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	bounds, ok := extent(d, ctx)
	if !ok {
		return nil, ErrEmpty
	}
	bounds = bounds.Inflate(opts.Padding, opts.Padding)

	width := int(math.Ceil(float64(bounds.W) * opts.Scale))
	height := int(math.Ceil(float64(bounds.H) * opts.Scale))
	dc := gg.NewContext(max(width, 1), max(height, 1))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.FontSize * opts.Scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	c := &pngCanvas{dc: dc, origin: geom.Pt(bounds.X, bounds.Y), scale: opts.Scale}

	// Edges first so boxes sit on top of any overlap.
	if ctx != nil {
		for _, r := range ctx.Routes() {
			c.drawRoute(r)
		}
	}
	for _, n := range d.Nodes() {
		c.drawNode(n)
	}
	if ctx != nil {
		for _, r := range ctx.Routes() {
			c.drawDecoration(r)
			c.drawLabels(r)
		}
	}
	return dc.Image(), nil
}

// PNG encodes the drawing of d to w.
func PNG(w io.Writer, d *diagram.Diagram, ctx *route.Context, opts Options) error {
	img, err := Image(d, ctx, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG writes the drawing of d to a PNG file at path.
func SavePNG(path string, d *diagram.Diagram, ctx *route.Context, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PNG(f, d, ctx, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *pngCanvas) drawRoute(r route.Route) {
	dc := c.dc
	dc.SetLineWidth(1.5 * c.scale)
	dc.SetColor(color.Black)
	if r.Edge.Kind.Dashed() {
		dc.SetDash(6*c.scale, 4*c.scale)
	}
	for i, p := range r.Path {
		x, y := c.xy(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.Stroke()
	dc.SetDash()
}

func (c *pngCanvas) drawNode(n *diagram.Node) {
	dc := c.dc
	x, y := c.xy(geom.Pt(n.Bounds.X, n.Bounds.Y))
	w := float64(n.Bounds.W) * c.scale
	h := float64(n.Bounds.H) * c.scale

	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(color.White)
	dc.FillPreserve()
	dc.SetLineWidth(1.5 * c.scale)
	dc.SetColor(color.Black)
	dc.Stroke()

	cx, cy := c.xy(n.Center())
	dc.DrawStringAnchored(n.ID, cx, cy, 0.5, 0.5)
}

// drawDecoration draws the arrowhead or diamond of r's kind. Diamonds sit at
// the start of the edge, everything else at the end.
func (c *pngCanvas) drawDecoration(r route.Route) {
	kind := r.Edge.Kind.Arrow()
	if kind == diagram.ArrowNone {
		return
	}
	from, tip, ok := approach(r.Path, kind.AtStart())
	if !ok {
		return
	}
	fx, fy := c.xy(from)
	tx, ty := c.xy(tip)

	dx, dy := tx-fx, ty-fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	size := arrowSize * c.scale
	baseX1 := tx - size*dx + size*dy*arrowAngle
	baseY1 := ty - size*dy - size*dx*arrowAngle
	baseX2 := tx - size*dx - size*dy*arrowAngle
	baseY2 := ty - size*dy + size*dx*arrowAngle

	dc := c.dc
	dc.SetLineWidth(1.5 * c.scale)
	switch kind {
	case diagram.ArrowOpen:
		dc.MoveTo(baseX1, baseY1)
		dc.LineTo(tx, ty)
		dc.LineTo(baseX2, baseY2)
		dc.SetColor(color.Black)
		dc.Stroke()
	case diagram.ArrowTriangle:
		dc.MoveTo(tx, ty)
		dc.LineTo(baseX1, baseY1)
		dc.LineTo(baseX2, baseY2)
		dc.ClosePath()
		dc.SetColor(color.White)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.Stroke()
	case diagram.ArrowHollowDiamond, diagram.ArrowFilledDiamond:
		backX := tx - 2*size*dx
		backY := ty - 2*size*dy
		dc.MoveTo(tx, ty)
		dc.LineTo(baseX1, baseY1)
		dc.LineTo(backX, backY)
		dc.LineTo(baseX2, baseY2)
		dc.ClosePath()
		if kind == diagram.ArrowFilledDiamond {
			dc.SetColor(color.Black)
		} else {
			dc.SetColor(color.White)
		}
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.Stroke()
	}
}

func (c *pngCanvas) drawLabels(r route.Route) {
	l := r.Edge.Labels
	if l.Empty() {
		return
	}
	dc := c.dc
	dc.SetColor(color.Black)
	pad := 4 * c.scale
	if l.Start != "" {
		x, y := c.xy(r.Path.First())
		dc.DrawStringAnchored(l.Start, x+pad, y-pad, 0, 0)
	}
	if l.Middle != "" {
		x, y := c.xy(r.Path.Middle())
		dc.DrawStringAnchored(l.Middle, x, y-pad, 0.5, 0)
	}
	if l.End != "" {
		x, y := c.xy(r.Path.Last())
		dc.DrawStringAnchored(l.End, x-pad, y-pad, 1, 0)
	}
}
