package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Canvas rasterises game draw calls onto a character screen. One screen
// cell is one unit; a cell is covered when its centre is.
type Canvas struct {
	screen *core.Screen
}

// NewCanvas returns a canvas drawing on s.
func NewCanvas(s *core.Screen) *Canvas {
	return &Canvas{screen: s}
}

// Clear fills the screen with c.
func (cv *Canvas) Clear(c color.NRGBA) {
	cv.screen.ClearTo(c)
}

// FillRect tints every cell whose centre lies in the rectangle.
func (cv *Canvas) FillRect(x, y, w, h float64, c color.NRGBA) {
	cv.screen.TintRect(cellRect(x, y, w, h), c)
}

// StrokeRect outlines the cells FillRect would cover with box-drawing
// runes. Width is ignored.
func (cv *Canvas) StrokeRect(x, y, w, h, _ float64, c color.NRGBA) {
	cv.screen.DrawBox(cellRect(x, y, w, h), c)
}

// cellRect returns the cells whose centres lie in the rectangle.
func cellRect(x, y, w, h float64) core.Rect {
	x0, y0 := int(math.Ceil(x-0.5)), int(math.Ceil(y-0.5))
	x1, y1 := int(math.Ceil(x+w-0.5)), int(math.Ceil(y+h-0.5))
	return core.RectBetween(x0, y0, x1, y1)
}

// FillPolygon tints every cell whose centre lies inside pts.
func (cv *Canvas) FillPolygon(pts []hexgrid.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	area := core.RectBetween(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X))+1, int(math.Ceil(hi.Y))+1,
	).Intersect(cv.screen.Bounds())

	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if insidePolygon(pts, float64(x)+0.5, float64(y)+0.5) {
				cv.screen.Tint(x, y, c)
			}
		}
	}
}

// insidePolygon is the even-odd rule.
func insidePolygon(pts []hexgrid.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// StrokeLine draws the segment with box-drawing runes. Width is ignored;
// a line is always one cell thick.
func (cv *Canvas) StrokeLine(seg hexgrid.PointPair, _ float64, c color.NRGBA) {
	dx, dy := seg.B.X-seg.A.X, seg.B.Y-seg.A.Y
	r := lineRune(dx, dy)

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		cv.screen.SetFG(int(math.Floor(seg.A.X)), int(math.Floor(seg.A.Y)), r, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := seg.A.X + dx*t
		y := seg.A.Y + dy*t
		cv.screen.SetFG(int(math.Floor(x)), int(math.Floor(y)), r, c)
	}
}

// lineRune picks a rune for the segment's direction. Terminal cells are
// about twice as tall as they are wide, so dy counts double.
func lineRune(dx, dy float64) rune {
	angle := math.Abs(math.Atan2(2*dy, dx)) * 180 / math.Pi
	if angle > 90 {
		angle = 180 - angle
	}
	switch {
	case angle < 22.5:
		return '─'
	case angle > 67.5:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

// DrawText writes a line of text. Large text is drawn the same as normal
// text.
func (cv *Canvas) DrawText(t game.Text) {
	x := t.X
	if t.Align == game.AlignCenter {
		x -= float64(len([]rune(t.Value))) / 2
	}
	cv.screen.DrawTextColor(int(math.Round(x)), int(math.Floor(t.Y)), t.Value, t.Color)
}
