// Package region implements selection overlays on the hex grid.
//
// A Region is a set of cells tagged with a category. Its outline is the
// symmetric difference of the cells' sides: a side shared by two selected
// cells cancels out, so only the boundary of the selection is drawn.
package region

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Category tags what a region represents and picks its fill colour.
type Category int

const (
	Neutral Category = iota
	Friendly
	Hostile
	Player
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Neutral:
		return "Neutral"
	case Friendly:
		return "Friendly"
	case Hostile:
		return "Hostile"
	case Player:
		return "Player"
	default:
		return "Unknown"
	}
}

// Fill returns the translucent fill colour for cells of this category.
func (c Category) Fill() color.NRGBA {
	switch c {
	case Friendly:
		return color.NRGBA{R: 0, G: 255, B: 0, A: 128}
	case Hostile:
		return color.NRGBA{R: 255, G: 0, B: 0, A: 128}
	case Player:
		return color.NRGBA{R: 0, G: 0, B: 255, A: 128}
	default:
		return color.NRGBA{R: 230, G: 230, B: 0, A: 128}
	}
}

// Outline stroke shared by every category.
var (
	OutlineColor = color.NRGBA{R: 51, G: 51, B: 51, A: 128}
	OutlineWidth = 1.0
)

// Region is a categorised set of cells.
// It is not safe for concurrent use.
type Region struct {
	category Category
	cells    mapset.Set[hexgrid.Hex]
	order    []hexgrid.Hex

	outline []hexgrid.Edge
	dirty   bool
}

// New returns an empty region.
func New(category Category) *Region {
	return &Region{
		category: category,
		cells:    mapset.New[hexgrid.Hex](),
	}
}

// Category returns the region's category.
func (r *Region) Category() Category {
	return r.category
}

// Push adds h to the region. Pushing a cell that is already selected is a
// no-op; the return value reports whether the set changed.
func (r *Region) Push(h hexgrid.Hex) bool {
	if r.cells.Has(h) {
		return false
	}
	r.cells.Put(h)
	r.order = append(r.order, h)
	r.dirty = true
	return true
}

// Clear empties the region.
func (r *Region) Clear() {
	if len(r.order) == 0 {
		return
	}
	r.cells = mapset.New[hexgrid.Hex]()
	r.order = r.order[:0]
	r.dirty = true
}

// Len returns the number of selected cells.
func (r *Region) Len() int {
	return r.cells.Size()
}

// Contains reports whether h is selected.
func (r *Region) Contains(h hexgrid.Hex) bool {
	return r.cells.Has(h)
}

// Cells returns the selected cells in the order they were pushed.
func (r *Region) Cells() []hexgrid.Hex {
	out := make([]hexgrid.Hex, len(r.order))
	copy(out, r.order)
	return out
}

// Outline returns the boundary sides of the selection. Calls between two
// changes share one cached slice, which callers must not modify. A change
// builds a new slice, so an outline taken earlier stays as it was.
func (r *Region) Outline() []hexgrid.Edge {
	if !r.dirty {
		return r.outline
	}

	edges := mapset.New[hexgrid.Edge]()
	seen := make([]hexgrid.Edge, 0, 6*len(r.order))
	for _, h := range r.order {
		for _, e := range h.Sides() {
			if edges.Has(e) {
				edges.Remove(e)
				continue
			}
			edges.Put(e)
			seen = append(seen, e)
		}
	}

	outline := make([]hexgrid.Edge, 0, edges.Size())
	for _, e := range seen {
		if edges.Has(e) {
			outline = append(outline, e)
		}
	}
	r.outline = outline
	r.dirty = false
	return r.outline
}

// OutlineSegments projects the outline through a layout.
func (r *Region) OutlineSegments(l hexgrid.Layout) []hexgrid.PointPair {
	edges := r.Outline()
	out := make([]hexgrid.PointPair, len(edges))
	for i, e := range edges {
		out[i] = l.EdgeSegment(e)
	}
	return out
}

// Polygons returns the corner polygon of every selected cell.
func (r *Region) Polygons(l hexgrid.Layout) [][6]hexgrid.Point {
	out := make([][6]hexgrid.Point, len(r.order))
	for i, h := range r.order {
		out[i] = l.Vertices(h)
	}
	return out
}
