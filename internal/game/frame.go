package game

import (
	"image/color"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Frame is everything a scene needs to know about the current frame.
type Frame struct {
	DT     float64 // seconds since the previous frame, already clamped
	Input  core.InputFrame
	Width  float64 // screen size in frontend units
	Height float64
	// Glyph is the size of one text character in frontend units. It lets
	// scenes size text boxes the same way on both frontends.
	Glyph hexgrid.Point
}

// Center returns the middle of the screen.
func (f Frame) Center() hexgrid.Point {
	return hexgrid.Pt(f.Width/2, f.Height/2)
}

// Align controls where a Text is anchored.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is a single line of text.
type Text struct {
	Value string
	X, Y  float64 // anchor point, at the top of the line
	Align Align
	Large bool
	Color color.NRGBA
}

// Canvas receives the draw calls of one frame. Frontends implement it on
// top of their own drawing primitives. Colours are non-premultiplied and
// blend over what is already drawn.
type Canvas interface {
	Clear(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	StrokeRect(x, y, w, h, width float64, c color.NRGBA)
	FillPolygon(pts []hexgrid.Point, c color.NRGBA)
	StrokeLine(seg hexgrid.PointPair, width float64, c color.NRGBA)
	DrawText(t Text)
}

// LayoutFunc builds the grid layout for a screen of w by h frontend units.
// Frontends call it again whenever the screen is resized.
type LayoutFunc func(w, h float64) (hexgrid.Layout, error)

// View is the visible part of the screen.
type View struct {
	Min, Max hexgrid.Point
}

// ViewOf returns the view covering the whole frame.
func ViewOf(f Frame) View {
	return View{Max: hexgrid.Pt(f.Width, f.Height)}
}

// Overlaps reports whether the box lo..hi is at least partly visible.
func (v View) Overlaps(lo, hi hexgrid.Point) bool {
	return hi.X >= v.Min.X && lo.X <= v.Max.X && hi.Y >= v.Min.Y && lo.Y <= v.Max.Y
}
