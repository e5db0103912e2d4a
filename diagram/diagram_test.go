package diagram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthoroute/geom"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind     Kind
		priority Priority
		arrow    ArrowKind
		dashed   bool
		axis     geom.Axis
	}{
		{KindInheritance, PriorityInheritance, ArrowTriangle, false, geom.Vertical},
		{KindImplementation, PriorityImplementation, ArrowTriangle, true, geom.Vertical},
		{KindAggregation, PriorityAggregation, ArrowHollowDiamond, false, geom.Horizontal},
		{KindComposition, PriorityComposition, ArrowFilledDiamond, false, geom.Horizontal},
		{KindAssociation, PriorityAssociation, ArrowOpen, false, geom.Horizontal},
		{KindDependency, PriorityDependency, ArrowOpen, true, geom.Horizontal},
		{KindTransition, PriorityAssociation, ArrowOpen, false, geom.Horizontal},
		{KindLink, PriorityAssociation, ArrowNone, false, geom.Horizontal},
		{KindNoteConnector, PriorityDependency, ArrowNone, true, geom.Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.priority, tt.kind.Priority())
			assert.Equal(t, tt.arrow, tt.kind.Arrow())
			assert.Equal(t, tt.dashed, tt.kind.Dashed())
			assert.Equal(t, tt.axis, tt.kind.PreferredAxis())

			parsed, err := ParseKind(tt.kind.String())
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed)
		})
	}
	assert.False(t, KindUnknown.Valid())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestParseKindAliases(t *testing.T) {
	for in, want := range map[string]Kind{
		"Generalization": KindInheritance,
		" extends ":      KindInheritance,
		"REALIZATION":    KindImplementation,
		"uses":           KindDependency,
		"notes":          KindNoteConnector,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("friendship")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPriorityOrder(t *testing.T) {
	assert.Equal(t, []Priority{
		PriorityInheritance, PriorityImplementation, PriorityAggregation,
		PriorityComposition, PriorityAssociation, PriorityDependency, PrioritySelfEdge,
	}, Priorities)
	for _, p := range Priorities[:5] {
		assert.True(t, p.Segmented(), p.String())
	}
	assert.False(t, PriorityDependency.Segmented())
	assert.False(t, PrioritySelfEdge.Segmented())
	assert.Equal(t, "SELF_EDGE", PrioritySelfEdge.String())
	assert.Equal(t, "UNCLASSIFIED", PriorityUnclassified.String())
	assert.True(t, ArrowFilledDiamond.AtStart())
	assert.False(t, ArrowTriangle.AtStart())
}

func TestConnect(t *testing.T) {
	d := New()
	_, err := d.AddNode("A", geom.R(0, 0, 80, 40))
	require.NoError(t, err)
	_, err = d.AddNode("B", geom.R(200, 0, 80, 40))
	require.NoError(t, err)

	e, err := d.Connect("ab", "A", "B", KindComposition, Labels{Start: "1", End: "*"})
	require.NoError(t, err)
	assert.Equal(t, PriorityComposition, e.Priority())
	assert.False(t, e.IsSelf())

	self, err := d.Connect("aa", "A", "A", KindComposition, Labels{})
	require.NoError(t, err)
	assert.True(t, self.IsSelf())
	assert.Equal(t, PrioritySelfEdge, self.Priority())

	a, _ := d.Node("A")
	b, _ := d.Node("B")
	assert.Equal(t, b, e.Other(a))
	assert.Equal(t, a, e.Other(b))
	assert.True(t, e.Touches(a))
	assert.Equal(t, "ab(A->B composition)", e.String())

	back, err := d.Connect("ba", "B", "A", KindDependency, Labels{})
	require.NoError(t, err)
	assert.True(t, e.SameEnds(back))
	assert.False(t, e.SameEnds(self))

	assert.Equal(t, geom.R(0, 0, 280, 40), d.Bounds())
	assert.NoError(t, d.Validate())
}

func TestConnectErrors(t *testing.T) {
	d := New()
	_, err := d.AddNode("A", geom.R(0, 0, 80, 40))
	require.NoError(t, err)

	_, err = d.AddNode("A", geom.R(0, 0, 10, 10))
	assert.ErrorIs(t, err, ErrDuplicateNode)
	_, err = d.AddNode("flat", geom.R(0, 0, 10, 0))
	assert.ErrorIs(t, err, ErrDegenerateNode)

	_, err = d.Connect("x", "A", "missing", KindAssociation, Labels{})
	assert.ErrorIs(t, err, ErrNodeNotFound)
	_, err = d.Connect("x", "A", "A", KindUnknown, Labels{})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = d.Connect("x", "A", "A", KindLink, Labels{})
	require.NoError(t, err)
	_, err = d.Connect("x", "A", "A", KindLink, Labels{})
	assert.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	d := New()
	a, err := d.AddNode("A", geom.R(0, 0, 80, 40))
	require.NoError(t, err)
	_, err = d.Connect("e", "A", "A", KindLink, Labels{})
	require.NoError(t, err)

	a.Bounds = geom.Rect{}
	stray := &Node{ID: "stray", Bounds: geom.R(0, 0, 1, 1)}
	d.edges = append(d.edges, NewEdge("f", a, stray, KindAssociation, Labels{}))

	err = d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateNode))
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestLabels(t *testing.T) {
	assert.True(t, Labels{}.Empty())
	assert.False(t, Labels{Middle: "uses"}.Empty())
}
