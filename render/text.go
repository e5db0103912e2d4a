package render

import (
	"fmt"
	"io"
	"strings"

	"orthoroute/diagram"
	"orthoroute/geom"
	"orthoroute/route"
)

// textCanvas is a rune grid. A cell is scale diagram pixels wide and twice
// that tall, roughly the shape of a terminal character.
type textCanvas struct {
	cells  [][]rune
	origin geom.Point
	scale  int
}

func newTextCanvas(bounds geom.Rect, scale int) *textCanvas {
	c := &textCanvas{origin: geom.Pt(bounds.X, bounds.Y), scale: scale}
	cols := bounds.W/scale + 1
	rows := bounds.H/(2*scale) + 1
	c.cells = make([][]rune, rows)
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = ' '
		}
	}
	return c
}

func (c *textCanvas) cell(p geom.Point) geom.Point {
	return geom.Pt((p.X-c.origin.X)/c.scale, (p.Y-c.origin.Y)/(2*c.scale))
}

func (c *textCanvas) valid(p geom.Point) bool {
	return p.Y >= 0 && p.Y < len(c.cells) && p.X >= 0 && p.X < len(c.cells[p.Y])
}

func (c *textCanvas) set(p geom.Point, r rune) {
	if c.valid(p) {
		c.cells[p.Y][p.X] = r
	}
}

func (c *textCanvas) get(p geom.Point) rune {
	if !c.valid(p) {
		return ' '
	}
	return c.cells[p.Y][p.X]
}

func (c *textCanvas) write(p geom.Point, s string) {
	for i, r := range []rune(s) {
		c.set(geom.Pt(p.X+i, p.Y), r)
	}
}

func (c *textCanvas) lines() []string {
	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Text draws d on a character grid. Scale is the number of diagram pixels per
// column; rows are twice as tall.
func Text(d *diagram.Diagram, ctx *route.Context, scale int) []string {
	if scale < 1 {
		scale = 1
	}
	bounds, ok := extent(d, ctx)
	if !ok {
		return nil
	}
	c := newTextCanvas(bounds, scale)

	if ctx != nil {
		for _, r := range ctx.Routes() {
			c.drawPath(r.Path)
		}
	}
	for _, n := range d.Nodes() {
		c.drawBox(n)
	}
	if ctx != nil {
		for _, r := range ctx.Routes() {
			c.drawDecoration(r)
			if r.Edge.Labels.Middle != "" {
				c.write(c.cell(r.Path.Middle()), r.Edge.Labels.Middle)
			}
		}
	}
	return c.lines()
}

// WriteText writes rendered lines to w, one per line.
func WriteText(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (c *textCanvas) drawPath(p geom.Path) {
	cells := make([]geom.Point, 0, len(p))
	for _, pt := range p {
		q := c.cell(pt)
		if len(cells) > 0 && cells[len(cells)-1] == q {
			continue
		}
		cells = append(cells, q)
	}
	for i := 1; i < len(cells); i++ {
		c.drawSegment(cells[i-1], cells[i])
	}
	for i := 1; i < len(cells)-1; i++ {
		c.drawCorner(cells[i-1], cells[i], cells[i+1])
	}
}

func (c *textCanvas) drawSegment(from, to geom.Point) {
	switch {
	case from.Y == to.Y:
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			c.join(geom.Pt(x, from.Y), '─')
		}
	case from.X == to.X:
		for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
			c.join(geom.Pt(from.X, y), '│')
		}
	default:
		c.drawDiagonal(from, to)
	}
}

// join sets a line rune, turning a crossing of the other direction into '┼'.
func (c *textCanvas) join(p geom.Point, r rune) {
	switch cur := c.get(p); {
	case cur == ' ' || cur == r:
		c.set(p, r)
	case (cur == '─' && r == '│') || (cur == '│' && r == '─'):
		c.set(p, '┼')
	default:
		c.set(p, r)
	}
}

// drawDiagonal steps from one cell to the other with Bresenham's algorithm.
func (c *textCanvas) drawDiagonal(from, to geom.Point) {
	dx, dy := geom.Abs(to.X-from.X), -geom.Abs(to.Y-from.Y)
	sx, sy := geom.Sign(to.X-from.X), geom.Sign(to.Y-from.Y)
	ch := '\\'
	if sx != sy {
		ch = '/'
	}
	err := dx + dy
	p := from
	for {
		c.set(p, ch)
		if p == to {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

func (c *textCanvas) drawCorner(prev, at, next geom.Point) {
	var r rune
	switch {
	case prev.Y == at.Y && next.X == at.X:
		switch {
		case prev.X < at.X && at.Y < next.Y:
			r = '┐'
		case prev.X < at.X && at.Y > next.Y:
			r = '┘'
		case prev.X > at.X && at.Y < next.Y:
			r = '┌'
		default:
			r = '└'
		}
	case prev.X == at.X && next.Y == at.Y:
		switch {
		case prev.Y < at.Y && at.X < next.X:
			r = '└'
		case prev.Y < at.Y && at.X > next.X:
			r = '┘'
		case prev.Y > at.Y && at.X < next.X:
			r = '┌'
		default:
			r = '┐'
		}
	default:
		return
	}
	c.set(at, r)
}

func (c *textCanvas) drawBox(n *diagram.Node) {
	tl := c.cell(geom.Pt(n.Bounds.Left(), n.Bounds.Top()))
	br := c.cell(geom.Pt(n.Bounds.Right(), n.Bounds.Bottom()))
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			p := geom.Pt(x, y)
			switch {
			case (y == tl.Y || y == br.Y) && (x == tl.X || x == br.X):
				c.set(p, '+')
			case y == tl.Y || y == br.Y:
				c.set(p, '-')
			case x == tl.X || x == br.X:
				c.set(p, '|')
			default:
				c.set(p, ' ')
			}
		}
	}

	label := []rune(n.ID)
	if room := br.X - tl.X - 1; len(label) > room {
		label = label[:max(room, 0)]
	}
	mid := c.cell(n.Center())
	if mid.Y == tl.Y && br.Y > tl.Y+1 {
		mid.Y++
	}
	if mid.Y > tl.Y && mid.Y < br.Y {
		x := tl.X + 1 + (br.X-tl.X-1-len(label))/2
		c.write(geom.Pt(x, mid.Y), string(label))
	}
}

var arrowRunes = map[diagram.ArrowKind][4]rune{
	// right, left, down, up
	diagram.ArrowOpen:          {'>', '<', 'v', '^'},
	diagram.ArrowTriangle:      {'▷', '◁', '▽', '△'},
	diagram.ArrowHollowDiamond: {'◇', '◇', '◇', '◇'},
	diagram.ArrowFilledDiamond: {'◆', '◆', '◆', '◆'},
}

// drawDecoration puts the arrow rune in the cell just outside the node the
// decoration belongs to.
func (c *textCanvas) drawDecoration(r route.Route) {
	kind := r.Edge.Kind.Arrow()
	runes, ok := arrowRunes[kind]
	if !ok {
		return
	}
	from, tip, ok := approach(r.Path, kind.AtStart())
	if !ok {
		return
	}
	dx, dy := geom.Sign(tip.X-from.X), geom.Sign(tip.Y-from.Y)
	at := c.cell(tip)

	var rn rune
	switch {
	case dx > 0 && dy == 0:
		rn = runes[0]
		at.X--
	case dx < 0 && dy == 0:
		rn = runes[1]
		at.X++
	case dy > 0:
		rn = runes[2]
		at.Y--
	default:
		rn = runes[3]
		at.Y++
	}
	c.set(at, rn)
}
