package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidRoundsDown(t *testing.T) {
	assert.Equal(t, 290, Mid(180, 400))
	assert.Equal(t, 2, Mid(2, 3))
	assert.Equal(t, -3, Mid(-2, -3))
	assert.Equal(t, Pt(-2, 0), Pt(-3, 0).Midpoint(Pt(0, 1)))
}

func TestBetweenIsStrict(t *testing.T) {
	assert.True(t, Between(5, 0, 10))
	assert.True(t, Between(5, 10, 0))
	assert.False(t, Between(0, 0, 10))
	assert.False(t, Between(10, 0, 10))
	assert.False(t, Between(3, 3, 3))
}

func TestSignAndAbs(t *testing.T) {
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(3))
	assert.Equal(t, 4, Abs(-4))
	assert.Equal(t, Pt(3, -1), Pt(1, 2).Translate(2, -3))
}

func TestRectSides(t *testing.T) {
	r := R(100, 100, 80, 40)
	assert.Equal(t, Pt(140, 120), r.Center())
	assert.Equal(t, Pt(140, 100), r.ConnectionPoint(North))
	assert.Equal(t, Pt(140, 140), r.ConnectionPoint(South))
	assert.Equal(t, Pt(180, 120), r.ConnectionPoint(East))
	assert.Equal(t, Pt(100, 120), r.ConnectionPoint(West))

	for _, s := range Sides {
		p := r.ConnectionPoint(s)
		assert.True(t, r.OnBoundary(p), s.String())
		got, ok := r.SideOf(p)
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	assert.Equal(t, Line{P0: Pt(180, 100), P1: Pt(180, 140)}, r.SideLine(East))
	assert.False(t, r.OnBoundary(r.Center()))
	assert.False(t, r.OnBoundary(Pt(181, 120)))
	_, ok := r.SideOf(Pt(0, 0))
	assert.False(t, ok)
}

func TestRectCornersAndUnion(t *testing.T) {
	r := R(0, 0, 10, 20)
	assert.Equal(t, Pt(10, 0), r.Corner(TopRight))
	assert.Equal(t, Pt(0, 0), r.Corner(TopLeft))
	assert.Equal(t, Pt(0, 20), r.Corner(BottomLeft))
	assert.Equal(t, Pt(10, 20), r.Corner(BottomRight))

	assert.Equal(t, R(0, 0, 50, 60), r.Union(R(40, 50, 10, 10)))
	assert.Equal(t, R(-5, -5, 20, 30), r.Inflate(5, 5))
	assert.True(t, R(0, 0, 0, 10).Empty())
	assert.False(t, r.Empty())
}

func TestSideAxes(t *testing.T) {
	assert.Equal(t, Horizontal, North.Along())
	assert.Equal(t, Vertical, North.Exit())
	assert.Equal(t, Vertical, East.Along())
	assert.Equal(t, Horizontal, West.Exit())
	assert.Equal(t, -1, North.Outward())
	assert.Equal(t, 1, East.Outward())
	for _, s := range Sides {
		assert.Equal(t, s, s.Opposite().Opposite())
	}
}

func TestCornerOrder(t *testing.T) {
	assert.Equal(t, [4]Corner{TopRight, TopLeft, BottomLeft, BottomRight}, Corners)
	assert.Equal(t, 1, TopRight.Horizontal())
	assert.Equal(t, -1, TopRight.Vertical())
	assert.Equal(t, -1, BottomLeft.Horizontal())
	assert.Equal(t, 1, BottomLeft.Vertical())
}

func TestPath(t *testing.T) {
	p := Path{Pt(180, 120), Pt(290, 120), Pt(290, 120), Pt(400, 120)}
	assert.True(t, p.Orthogonal())
	assert.Len(t, p.Segments(), 3)
	assert.InDelta(t, 220.0, p.Length(), 1e-9)
	assert.Equal(t, R(180, 120, 220, 0), p.Bounds())
	assert.Equal(t, "(180,120)-(290,120)-(290,120)-(400,120)", p.String())

	diag := Path{Pt(0, 0), Pt(3, 4)}
	assert.False(t, diag.Orthogonal())
	assert.InDelta(t, 5.0, diag.Length(), 1e-9)

	c := p.Clone()
	assert.True(t, c.Equal(p))
	c[0] = Pt(0, 0)
	assert.False(t, c.Equal(p))
}

func TestPathMiddle(t *testing.T) {
	p := Path{Pt(0, 0), Pt(0, 10), Pt(100, 10), Pt(100, 20)}
	assert.Equal(t, Pt(50, 10), p.Middle())
}
