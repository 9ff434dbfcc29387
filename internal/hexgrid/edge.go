package hexgrid

// Edge identifies one side of the grid independently of which of the two
// adjacent cells it is viewed from. Side is always E, NE or NW.
type Edge struct {
	Cell Hex
	Side Direction
}

// EdgeOf returns the canonical identity of side d of cell h. Sides W, SW
// and SE are re-expressed from the neighbour across them.
func EdgeOf(h Hex, d Direction) Edge {
	if d >= W {
		return Edge{Cell: h.Neighbour(d), Side: d.Opposite()}
	}
	return Edge{Cell: h, Side: d}
}

// Sides returns the canonical identities of all six sides of h in
// Direction order.
func (h Hex) Sides() [6]Edge {
	var out [6]Edge
	for i, d := range Directions {
		out[i] = EdgeOf(h, d)
	}
	return out
}

// Cells returns the two cells sharing the edge.
func (e Edge) Cells() (Hex, Hex) {
	return e.Cell, e.Cell.Neighbour(e.Side)
}

// EdgeSegment returns the screen segment of a canonical edge.
func (l Layout) EdgeSegment(e Edge) PointPair {
	return l.Side(e.Cell, e.Side)
}
