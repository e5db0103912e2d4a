package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthoroute/diagram"
	"orthoroute/geom"
)

func contextFixture(t *testing.T) (*diagram.Diagram, *Context) {
	t.Helper()
	d := buildDiagram(t,
		[]nodeSpec{{"A", 0, 0, 80, 40}, {"B", 200, 0, 80, 40}, {"C", 0, 200, 80, 40}},
		[]edgeSpec{
			{id: "ab", from: "A", to: "B", kind: diagram.KindAssociation},
			{id: "ba", from: "B", to: "A", kind: diagram.KindDependency},
			{id: "ac", from: "A", to: "C", kind: diagram.KindAssociation},
		},
	)
	ctx := NewContext()
	ab, _ := d.Edge("ab")
	ctx.Put(Route{
		Edge:      ab,
		Path:      geom.Path{geom.Pt(80, 20), geom.Pt(200, 20)},
		Style:     StyleStraight,
		StartSide: geom.East,
		EndSide:   geom.West,
	})
	return d, ctx
}

func TestContextPutAndQuery(t *testing.T) {
	d, ctx := contextFixture(t)
	ab, _ := d.Edge("ab")
	ba, _ := d.Edge("ba")
	ac, _ := d.Edge("ac")
	a, _ := d.Node("A")
	c, _ := d.Node("C")

	assert.True(t, ctx.Has(ab))
	assert.False(t, ctx.Has(ba))
	assert.Nil(t, ctx.Path(ba))
	assert.Equal(t, 1, ctx.Len())

	assert.False(t, ctx.IsFree(geom.Pt(80, 20)))
	assert.False(t, ctx.IsFree(geom.Pt(200, 20)))
	assert.True(t, ctx.IsFree(geom.Pt(40, 40)))

	require.Len(t, ctx.EdgesAt(a), 1)
	assert.Empty(t, ctx.EdgesAt(c))

	par := ctx.Parallel(ba)
	require.Len(t, par, 1)
	assert.Equal(t, ab, par[0].Edge)
	assert.Empty(t, ctx.Parallel(ab))
	assert.Empty(t, ctx.Parallel(ac))

	p, side := par[0].Attachment(a)
	assert.Equal(t, geom.Pt(80, 20), p)
	assert.Equal(t, geom.East, side)
}

func TestContextRoutesIsACopy(t *testing.T) {
	d, ctx := contextFixture(t)
	routes := ctx.Routes()
	routes[0].Path = nil
	ab, _ := d.Edge("ab")
	assert.NotNil(t, ctx.Path(ab))
}

func TestContextPutTwicePanics(t *testing.T) {
	d, ctx := contextFixture(t)
	ab, _ := d.Edge("ab")
	assert.True(t, isPanicWith(func() {
		ctx.Put(Route{Edge: ab, Path: geom.Path{geom.Pt(80, 20), geom.Pt(200, 20)}})
	}, ErrAlreadyRouted))
}

func TestContextPutOffBoundaryPanics(t *testing.T) {
	d, ctx := contextFixture(t)
	ac, _ := d.Edge("ac")
	assert.True(t, isPanicWith(func() {
		ctx.Put(Route{Edge: ac, Path: geom.Path{geom.Pt(40, 20), geom.Pt(40, 200)}})
	}, ErrNotAttached))
	assert.False(t, ctx.Has(ac))
}
