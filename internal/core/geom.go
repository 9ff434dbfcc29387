// Package core provides the frontend-neutral building blocks shared by the
// game and its platforms: cell areas, a coloured character screen and
// input snapshots. It has no dependency on Bubble Tea or Ebitengine.
package core

// Rect is an area of screen cells. The right and bottom edges are
// exclusive, so a zero-sized Rect covers nothing.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

// NewRect creates a rectangle from its top-left cell and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectBetween returns the rectangle spanning cells x0..x1-1 and y0..y1-1.
func RectBetween(x0, y0, x1, y1 int) Rect {
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cell.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the cells both rectangles cover. The result is Empty
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return RectBetween(x0, y0, x1, y1)
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
