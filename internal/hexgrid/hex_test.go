package hexgrid

import "testing"

func TestAtCubeInvariant(t *testing.T) {
	for q := -4; q <= 4; q++ {
		for r := -4; r <= 4; r++ {
			h := At(q, r)
			if h.Q()+h.R()+h.S() != 0 {
				t.Fatalf("At(%d,%d) = %v breaks q+s+r=0 (s=%d)", q, r, h, h.S())
			}
			if h.Q() != q || h.R() != r {
				t.Fatalf("At(%d,%d) returned q=%d r=%d", q, r, h.Q(), h.R())
			}
		}
	}
}

func TestHexArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Hex
		expected Hex
	}{
		{"add", At(1, -3).Add(At(3, -7)), At(4, -10)},
		{"sub", At(1, -3).Sub(At(3, -7)), At(-2, 4)},
		{"scale", At(1, -3).Scale(2), At(2, -6)},
		{"scale zero", At(5, 2).Scale(0), At(0, 0)},
		{"zero value is origin", Hex{}, At(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
			if tc.got.S() != -tc.got.Q()-tc.got.R() {
				t.Errorf("s not recomputed for %v", tc.got)
			}
		})
	}
}

func TestLengthAndDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Hex
		expected int
	}{
		{"same cell", At(2, -1), At(2, -1), 0},
		{"neighbour", At(0, 0), At(1, 0), 1},
		{"straight line", At(0, 0), At(0, 3), 3},
		{"mixed", At(3, -7), At(0, 0), 7},
		{"across origin", At(-2, 1), At(2, -1), 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := Distance(tc.a, tc.b); d != tc.expected {
				t.Errorf("Distance(%v,%v) = %d, expected %d", tc.a, tc.b, d, tc.expected)
			}
			if d := Distance(tc.b, tc.a); d != tc.expected {
				t.Errorf("Distance(%v,%v) = %d, expected %d (reversed)", tc.b, tc.a, d, tc.expected)
			}
			if l := tc.a.Sub(tc.b).Length(); l != tc.expected {
				t.Errorf("(a-b).Length() = %d, expected %d", l, tc.expected)
			}
		})
	}
}

func TestNeighbourOpposite(t *testing.T) {
	origins := []Hex{At(0, 0), At(3, -2), At(-5, 1)}
	for _, h := range origins {
		for _, d := range Directions {
			n := h.Neighbour(d)
			if Distance(h, n) != 1 {
				t.Errorf("%v.Neighbour(%v) = %v is not adjacent", h, d, n)
			}
			if back := n.Neighbour(d.Opposite()); back != h {
				t.Errorf("%v -> %v -> %v: got %v, expected %v", h, d, d.Opposite(), back, h)
			}
		}
	}
}

func TestDirectionOffsets(t *testing.T) {
	expected := map[Direction]Hex{
		E:  At(1, 0),
		NE: At(1, -1),
		NW: At(0, -1),
		W:  At(-1, 0),
		SW: At(-1, 1),
		SE: At(0, 1),
	}
	for d, want := range expected {
		if got := DirectionOffset(d); got != want {
			t.Errorf("DirectionOffset(%v) = %v, expected %v", d, got, want)
		}
	}
	if E.Opposite() != W || NE.Opposite() != SW || NW.Opposite() != SE {
		t.Error("Opposite does not pair E/W, NE/SW, NW/SE")
	}
	if Direction(6).Valid() || !SE.Valid() {
		t.Error("Valid() range is wrong")
	}
}

func TestEdgeOfSharedSide(t *testing.T) {
	h := At(2, -1)
	for _, d := range Directions {
		a := EdgeOf(h, d)
		b := EdgeOf(h.Neighbour(d), d.Opposite())
		if a != b {
			t.Errorf("side %v of %v: %+v != %+v from the neighbour", d, h, a, b)
		}
		if a.Side != E && a.Side != NE && a.Side != NW {
			t.Errorf("EdgeOf(%v,%v) has non-canonical side %v", h, d, a.Side)
		}
	}

	sides := h.Sides()
	seen := make(map[Edge]bool)
	for _, e := range sides {
		if seen[e] {
			t.Errorf("duplicate side %+v", e)
		}
		seen[e] = true
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		radius int
		count  int
	}{
		{0, 1},
		{1, 7},
		{2, 19},
		{5, 91},
	}

	for _, tc := range tests {
		m, err := NewMap(tc.radius)
		if err != nil {
			t.Fatalf("NewMap(%d): %v", tc.radius, err)
		}
		if m.Len() != tc.count {
			t.Errorf("NewMap(%d).Len() = %d, expected %d", tc.radius, m.Len(), tc.count)
		}
		for i, h := range m.Cells() {
			if h.Length() > tc.radius {
				t.Errorf("cell %v outside radius %d", h, tc.radius)
			}
			if m.Index(h) != i {
				t.Errorf("Index(%v) = %d, expected %d", h, m.Index(h), i)
			}
		}
		if m.Contains(At(tc.radius+1, 0)) {
			t.Errorf("radius %d map contains a cell beyond its edge", tc.radius)
		}
	}

	if _, err := NewMap(-1); err == nil {
		t.Error("NewMap(-1) should fail")
	}
}

func TestMapCellsIsCopy(t *testing.T) {
	m, _ := NewMap(1)
	cells := m.Cells()
	cells[0] = At(99, 99)
	if m.Contains(At(99, 99)) || m.Cells()[0] == At(99, 99) {
		t.Error("Cells() leaked internal storage")
	}
}
