package route

import "orthoroute/geom"

// Slot ranges and spacing divisors per side type.
const (
	maxSlotNorthSouth = 4
	maxSlotEastWest   = 2
	divNorthSouth     = 10
	divEastWest       = 6
)

// MaxSlot returns the largest allocator index usable on side s.
func MaxSlot(s geom.Side) int {
	if s.Along() == geom.Horizontal {
		return maxSlotNorthSouth
	}
	return maxSlotEastWest
}

// SlotSpacing is the distance between adjacent indices on side s of r. It is
// never less than one pixel, so distinct indices stay distinct points on any
// side long enough to hold them.
func SlotSpacing(r geom.Rect, s geom.Side) int {
	if s.Along() == geom.Horizontal {
		return max(1, r.W/divNorthSouth)
	}
	return max(1, r.H/divEastWest)
}

// ClampSlot limits index to the range allowed on side s.
func ClampSlot(s geom.Side, index int) int {
	m := MaxSlot(s)
	return max(-m, min(m, index))
}

// SlotPoint maps a discrete index on side s of r to a boundary point. Index 0
// is the side's midpoint; out of range indices are clamped. On sides shorter
// than the slot range the outer indices are pinned to the side's ends.
func SlotPoint(r geom.Rect, s geom.Side, index int) geom.Point {
	index = ClampSlot(s, index)
	off := index * SlotSpacing(r, s)
	mid := r.ConnectionPoint(s)
	if s.Along() == geom.Horizontal {
		return geom.Pt(max(r.Left(), min(r.Right(), mid.X+off)), mid.Y)
	}
	return geom.Pt(mid.X, max(r.Top(), min(r.Bottom(), mid.Y+off)))
}

// SlotOrder lists the indices of side s from the centre outward:
// 0, 1, -1, 2, -2, ...
func SlotOrder(s geom.Side) []int {
	m := MaxSlot(s)
	out := make([]int, 0, 2*m+1)
	out = append(out, 0)
	for i := 1; i <= m; i++ {
		out = append(out, i, -i)
	}
	return out
}

// SlotIndex finds the index whose point on side s of r equals p.
func SlotIndex(r geom.Rect, s geom.Side, p geom.Point) (int, bool) {
	for _, i := range SlotOrder(s) {
		if SlotPoint(r, s, i) == p {
			return i, true
		}
	}
	return 0, false
}
