package hexgrid

// Direction is one of the six sides shared with a neighbouring cell.
//
// Directions are listed counter-clockwise starting from East. Edge and
// vertex indexing depend on this order; do not reorder.
type Direction int

const (
	E Direction = iota
	NE
	NW
	W
	SW
	SE
)

// Directions lists all six directions in ordinal order.
var Directions = [6]Direction{E, NE, NW, W, SW, SE}

// directionOffsets holds the unit vector for each Direction, by ordinal.
var directionOffsets = [6]Hex{
	At(1, 0),  // E
	At(1, -1), // NE
	At(0, -1), // NW
	At(-1, 0), // W
	At(-1, 1), // SW
	At(0, 1),  // SE
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case E:
		return "E"
	case NE:
		return "NE"
	case NW:
		return "NW"
	case W:
		return "W"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= E && d <= SE
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// DirectionOffset returns the unit hex vector for d.
// It panics if d is not a valid direction.
func DirectionOffset(d Direction) Hex {
	return directionOffsets[d]
}

// Neighbour returns the adjacent cell in direction d.
func (h Hex) Neighbour(d Direction) Hex {
	return h.Add(DirectionOffset(d))
}

// Neighbours returns all six adjacent cells in Direction order.
func (h Hex) Neighbours() [6]Hex {
	var out [6]Hex
	for i, d := range Directions {
		out[i] = h.Neighbour(d)
	}
	return out
}
