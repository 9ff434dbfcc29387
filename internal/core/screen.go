package core

import "image/color"

// Cell is one character position on a Screen.
type Cell struct {
	Rune rune
	FG   color.NRGBA
	BG   color.NRGBA
}

// Screen is a 2D character buffer with per-cell colours.
// It decouples rendering from the terminal: games draw runes and colours,
// the platform turns them into escape sequences.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	blank  Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		blank:  Cell{Rune: ' ', FG: ColorWhite, BG: ColorBlack},
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the rectangle of all cells.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	keep := s.Bounds().Intersect(NewRect(0, 0, width, height))

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < keep.H; y++ {
		copy(s.cells[y][:keep.W], oldCells[y][:keep.W])
	}
}

// Clear resets every cell to a space on the background colour.
func (s *Screen) Clear() {
	s.ClearTo(s.blank.BG)
}

// ClearTo resets every cell to a space on bg.
func (s *Screen) ClearTo(bg color.NRGBA) {
	c := Cell{Rune: ' ', FG: s.blank.FG, BG: bg}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// SetFG places a rune with a foreground colour blended over the cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetFG(x, y int, r rune, fg color.NRGBA) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = Blend(c.BG, fg)
}

// Tint blends bg over the cell's background. A visible rune is tinted too,
// as a translucent layer on top would cover it.
func (s *Screen) Tint(x, y int, bg color.NRGBA) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.BG = Blend(c.BG, bg)
	if c.Rune != ' ' {
		c.FG = Blend(c.FG, bg)
	}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return s.blank
	}
	return s.cells[y][x]
}

// DrawTextColor writes a string in the given foreground colour.
// Characters past the screen edge are clipped.
func (s *Screen) DrawTextColor(x, y int, text string, fg color.NRGBA) {
	i := 0
	for _, r := range text {
		s.SetFG(x+i, y, r, fg)
		i++
	}
}

// TintRect blends bg over every cell of r that is on screen.
func (s *Screen) TintRect(r Rect, bg color.NRGBA) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Tint(x, y, bg)
		}
	}
}

// DrawBox draws the outline of r with box-drawing runes in fg.
func (s *Screen) DrawBox(r Rect, fg color.NRGBA) {
	if r.Empty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.SetFG(x, r.Y, '─', fg)
		s.SetFG(x, bottom, '─', fg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetFG(r.X, y, '│', fg)
		s.SetFG(right, y, '│', fg)
	}

	s.SetFG(r.X, r.Y, '┌', fg)
	s.SetFG(right, r.Y, '┐', fg)
	s.SetFG(r.X, bottom, '└', fg)
	s.SetFG(right, bottom, '┘', fg)
}
