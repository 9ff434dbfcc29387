package hexgrid

import "fmt"

// Map is a hexagon-shaped set of cells centred on the origin.
type Map struct {
	radius int
	cells  []Hex
	index  map[Hex]int
}

// NewMap builds a map holding every cell within radius steps of the origin.
func NewMap(radius int) (*Map, error) {
	if radius < 0 {
		return nil, fmt.Errorf("hexgrid: map radius %d is negative", radius)
	}
	m := &Map{
		radius: radius,
		index:  make(map[Hex]int, 3*radius*(radius+1)+1),
	}
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			h := At(q, r)
			m.index[h] = len(m.cells)
			m.cells = append(m.cells, h)
		}
	}
	return m, nil
}

// Radius returns the map radius.
func (m *Map) Radius() int {
	return m.radius
}

// Len returns the number of cells.
func (m *Map) Len() int {
	return len(m.cells)
}

// Contains reports whether h is on the map.
func (m *Map) Contains(h Hex) bool {
	_, ok := m.index[h]
	return ok
}

// Index returns the position of h in Cells, or -1.
func (m *Map) Index(h Hex) int {
	if i, ok := m.index[h]; ok {
		return i
	}
	return -1
}

// Cells returns a copy of the cells ordered by q, then r.
func (m *Map) Cells() []Hex {
	out := make([]Hex, len(m.cells))
	copy(out, m.cells)
	return out
}
