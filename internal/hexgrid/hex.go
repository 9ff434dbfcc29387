// Package hexgrid provides hexagonal grid coordinates and the transform
// between grid cells and screen space.
//
// Cells use cube coordinates (q, s, r) with q+s+r = 0. Only q and r are
// independent; s is always derived. The package has no dependencies on the
// rest of the module so that it can be tested and reused in isolation.
package hexgrid

import "fmt"

// Hex is a cell on the hex grid in cube coordinates.
//
//	+s    +q
//	  \ | /
//	   \|/
//	    *
//	   /|\
//	  / | \
//	   +r
//
// The zero value is the origin cell. Hex values are comparable and can be
// used as map keys.
type Hex struct {
	q, s, r int
}

// At builds a Hex from axial coordinates, deriving s = -q-r.
func At(q, r int) Hex {
	return Hex{q: q, s: -q - r, r: r}
}

// Q returns the q coordinate.
func (h Hex) Q() int {
	return h.q
}

// R returns the r coordinate.
func (h Hex) R() int {
	return h.r
}

// S returns the derived s coordinate.
func (h Hex) S() int {
	return h.s
}

// Add returns the component-wise sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return At(h.q+other.q, h.r+other.r)
}

// Sub returns the component-wise difference of two hexes.
func (h Hex) Sub(other Hex) Hex {
	return At(h.q-other.q, h.r-other.r)
}

// Scale multiplies a hex vector by k.
func (h Hex) Scale(k int) Hex {
	return At(h.q*k, h.r*k)
}

// Length returns the grid distance from the origin.
func (h Hex) Length() int {
	return (abs(h.q) + abs(h.r) + abs(h.s)) / 2
}

// Distance returns the number of steps between two cells.
func Distance(a, b Hex) int {
	return a.Sub(b).Length()
}

// String returns the axial form "(q,r)".
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.q, h.r)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
