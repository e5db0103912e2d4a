package geom

// Side is one of the four faces of a node.
type Side int

const (
	North Side = iota
	South
	East
	West
)

// Sides lists every side in a fixed order.
var Sides = [4]Side{North, South, East, West}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	}
	return East
}

// Along returns the axis the side itself runs along. Attachment points on a
// side vary in this coordinate.
func (s Side) Along() Axis {
	if s == North || s == South {
		return Horizontal
	}
	return Vertical
}

// Exit returns the axis a path leaving through this side starts on.
func (s Side) Exit() Axis {
	return s.Along().Perpendicular()
}

// Outward is -1 for North and West, +1 for South and East.
func (s Side) Outward() int {
	if s == North || s == West {
		return -1
	}
	return 1
}

// Corner identifies a node corner.
type Corner int

const (
	TopRight Corner = iota
	TopLeft
	BottomLeft
	BottomRight
)

// Corners is the counter-clockwise scan order starting at the top-right corner.
var Corners = [4]Corner{TopRight, TopLeft, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// Horizontal is +1 for right corners and -1 for left corners.
func (c Corner) Horizontal() int {
	if c == TopRight || c == BottomRight {
		return 1
	}
	return -1
}

// Vertical is -1 for top corners and +1 for bottom corners.
func (c Corner) Vertical() int {
	if c == TopRight || c == TopLeft {
		return -1
	}
	return 1
}
