package route

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"orthoroute/diagram"
	"orthoroute/geom"
)

type nodeSpec struct {
	id         string
	x, y, w, h int
}

type edgeSpec struct {
	id, from, to string
	kind         diagram.Kind
	labels       diagram.Labels
}

func buildDiagram(t *testing.T, nodes []nodeSpec, edges []edgeSpec) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	for _, n := range nodes {
		_, err := d.AddNode(n.id, geom.R(n.x, n.y, n.w, n.h))
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := d.Connect(e.id, e.from, e.to, e.kind, e.labels)
		require.NoError(t, err)
	}
	return d
}

func layout(t *testing.T, d *diagram.Diagram, opts ...Option) *Context {
	t.Helper()
	ctx, err := NewLayouter(opts...).Layout(d)
	require.NoError(t, err)
	require.Equal(t, len(d.Edges()), ctx.Len())
	return ctx
}

func routeOf(t *testing.T, d *diagram.Diagram, ctx *Context, id string) Route {
	t.Helper()
	e, ok := d.Edge(id)
	require.True(t, ok, "edge %s", id)
	r, ok := ctx.Route(e)
	require.True(t, ok, "route %s", id)
	return r
}

// panicErr runs f and returns the error it panicked with.
func panicErr(f func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(error)
			if !ok {
				e = fmt.Errorf("%v", v)
			}
			err = e
		}
	}()
	f()
	return nil
}

func isPanicWith(f func(), target error) bool {
	return errors.Is(panicErr(f), target)
}
