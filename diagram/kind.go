package diagram

import (
	"fmt"
	"strings"

	"orthoroute/geom"
)

// Kind is the closed set of edge types a diagram can contain.
type Kind int

const (
	KindUnknown Kind = iota
	KindInheritance
	KindImplementation
	KindAggregation
	KindComposition
	KindAssociation
	KindDependency
	KindTransition
	KindLink
	KindNoteConnector
)

// Priority is the router's classification of an edge. Classes are routed in
// declaration order.
type Priority int

const (
	PriorityUnclassified Priority = iota
	PriorityInheritance
	PriorityImplementation
	PriorityAggregation
	PriorityComposition
	PriorityAssociation
	PriorityDependency
	PrioritySelfEdge
)

// Priorities lists the routable classes in processing order.
var Priorities = []Priority{
	PriorityInheritance,
	PriorityImplementation,
	PriorityAggregation,
	PriorityComposition,
	PriorityAssociation,
	PriorityDependency,
	PrioritySelfEdge,
}

func (p Priority) String() string {
	switch p {
	case PriorityInheritance:
		return "INHERITANCE"
	case PriorityImplementation:
		return "IMPLEMENTATION"
	case PriorityAggregation:
		return "AGGREGATION"
	case PriorityComposition:
		return "COMPOSITION"
	case PriorityAssociation:
		return "ASSOCIATION"
	case PriorityDependency:
		return "DEPENDENCY"
	case PrioritySelfEdge:
		return "SELF_EDGE"
	}
	return "UNCLASSIFIED"
}

// Segmented reports whether edges of this class are routed orthogonally and
// may be merged.
func (p Priority) Segmented() bool {
	return p >= PriorityInheritance && p <= PriorityAssociation
}

// ArrowKind selects the decoration a renderer draws for an edge.
type ArrowKind int

const (
	ArrowNone ArrowKind = iota
	ArrowOpen
	ArrowTriangle
	ArrowHollowDiamond
	ArrowFilledDiamond
)

// AtStart reports whether the decoration anchors at the start node.
func (a ArrowKind) AtStart() bool {
	return a == ArrowHollowDiamond || a == ArrowFilledDiamond
}

type kindInfo struct {
	name      string
	priority  Priority
	arrow     ArrowKind
	dashed    bool
	preferred geom.Axis
}

var kinds = map[Kind]kindInfo{
	KindInheritance:    {"inheritance", PriorityInheritance, ArrowTriangle, false, geom.Vertical},
	KindImplementation: {"implementation", PriorityImplementation, ArrowTriangle, true, geom.Vertical},
	KindAggregation:    {"aggregation", PriorityAggregation, ArrowHollowDiamond, false, geom.Horizontal},
	KindComposition:    {"composition", PriorityComposition, ArrowFilledDiamond, false, geom.Horizontal},
	KindAssociation:    {"association", PriorityAssociation, ArrowOpen, false, geom.Horizontal},
	KindDependency:     {"dependency", PriorityDependency, ArrowOpen, true, geom.Horizontal},
	KindTransition:     {"transition", PriorityAssociation, ArrowOpen, false, geom.Horizontal},
	KindLink:           {"link", PriorityAssociation, ArrowNone, false, geom.Horizontal},
	KindNoteConnector:  {"note", PriorityDependency, ArrowNone, true, geom.Horizontal},
}

var kindAliases = map[string]Kind{
	"generalization": KindInheritance,
	"extends":        KindInheritance,
	"realization":    KindImplementation,
	"implements":     KindImplementation,
	"uses":           KindDependency,
	"notes":          KindNoteConnector,
}

// ParseKind maps a kind name, case-insensitively, to a Kind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for k, info := range kinds {
		if info.name == key {
			return k, nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "unknown"
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k Kind) Priority() Priority {
	return kinds[k].priority
}

func (k Kind) Arrow() ArrowKind {
	return kinds[k].arrow
}

func (k Kind) Dashed() bool {
	return kinds[k].dashed
}

// PreferredAxis is the axis of the first segment the router tries.
func (k Kind) PreferredAxis() geom.Axis {
	return kinds[k].preferred
}
