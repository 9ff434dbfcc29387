package tui

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

var red = color.NRGBA{R: 255, A: 255}

func screenRow(s *core.Screen, y int) string {
	out := make([]rune, s.Width())
	for x := range out {
		out[x] = s.GetCell(x, y).Rune
	}
	return string(out)
}

func TestCanvasFillPolygon(t *testing.T) {
	s := core.NewScreen(20, 10)
	cv := NewCanvas(s)

	square := []hexgrid.Point{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 5}, {X: 2, Y: 5}}
	cv.FillPolygon(square, red)

	tests := []struct {
		x, y   int
		filled bool
	}{
		{2, 2, true},
		{5, 4, true},
		{6, 2, false},
		{1, 3, false},
		{3, 5, false},
	}
	for _, tc := range tests {
		got := s.GetCell(tc.x, tc.y).BG == red
		if got != tc.filled {
			t.Errorf("cell (%d,%d) filled = %v, expected %v", tc.x, tc.y, got, tc.filled)
		}
	}
}

func TestCanvasFillHexagon(t *testing.T) {
	s := core.NewScreen(20, 10)
	cv := NewCanvas(s)
	l, err := hexgrid.NewLayout(hexgrid.PointyTop, hexgrid.Pt(4, 2), hexgrid.Pt(10.5, 5.5))
	if err != nil {
		t.Fatal(err)
	}
	v := l.Vertices(hexgrid.Hex{})
	cv.FillPolygon(v[:], red)

	if s.GetCell(10, 5).BG != red {
		t.Error("hexagon centre not filled")
	}
	if s.GetCell(0, 0).BG == red || s.GetCell(19, 9).BG == red {
		t.Error("hexagon spilled into the corners")
	}
}

func TestCanvasStrokeLine(t *testing.T) {
	s := core.NewScreen(20, 10)
	cv := NewCanvas(s)

	cv.StrokeLine(hexgrid.PointPair{A: hexgrid.Pt(1, 1), B: hexgrid.Pt(8, 1)}, 1, core.ColorWhite)
	for x := 1; x <= 8; x++ {
		if s.GetCell(x, 1).Rune != '─' {
			t.Errorf("horizontal line missing at x=%d: %q", x, s.GetCell(x, 1).Rune)
		}
	}

	cv.StrokeLine(hexgrid.PointPair{A: hexgrid.Pt(3, 3), B: hexgrid.Pt(3, 7)}, 1, core.ColorWhite)
	for y := 3; y <= 7; y++ {
		if s.GetCell(3, y).Rune != '│' {
			t.Errorf("vertical line missing at y=%d: %q", y, s.GetCell(3, y).Rune)
		}
	}
}

func TestLineRune(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected rune
	}{
		{"flat", 5, 0, '─'},
		{"flat backwards", -5, 0.5, '─'},
		{"upright", 0, 3, '│'},
		{"down right", 3.46, 1, '╲'},
		{"up right", 3.46, -1, '╱'},
		{"down left", -3.46, 1, '╱'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lineRune(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("lineRune(%g,%g) = %q, expected %q", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestCanvasTextAndRect(t *testing.T) {
	s := core.NewScreen(20, 10)
	cv := NewCanvas(s)

	cv.DrawText(game.Text{Value: "abcd", X: 10, Y: 3, Align: game.AlignCenter, Color: core.ColorWhite})
	if got := screenRow(s, 3)[8:12]; got != "abcd" {
		t.Errorf("centred text row = %q", screenRow(s, 3))
	}

	cv.FillRect(0, 0, 20, 10, red)
	if s.GetCell(0, 0).BG != red || s.GetCell(19, 9).BG != red {
		t.Error("full screen rect did not cover the corners")
	}

	cv.Clear(core.ColorBlack)
	if s.GetCell(5, 5).BG != core.ColorBlack || s.GetCell(9, 3).Rune != ' ' {
		t.Error("Clear left content behind")
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	s := core.NewScreen(20, 10)
	cv := NewCanvas(s)

	cv.FillRect(4, 2, 6, 4, red)
	cv.StrokeRect(4, 2, 6, 4, 2, core.ColorAmber)

	expected := map[[2]int]rune{
		{4, 2}: '┌', {9, 2}: '┐', {4, 5}: '└', {9, 5}: '┘',
		{6, 2}: '─', {4, 3}: '│', {6, 3}: ' ',
	}
	for pos, want := range expected {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("cell %v = %q, expected %q", pos, got, want)
		}
	}
	if c := s.GetCell(4, 2); c.BG != red || c.FG != core.ColorAmber {
		t.Errorf("border cell = %+v, expected amber on the filled box", c)
	}
	if s.GetCell(3, 2).Rune != ' ' || s.GetCell(10, 2).Rune != ' ' {
		t.Error("border drawn outside the filled cells")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColor(1, 1, "hi", core.ColorAmber)

	r := NewRenderer()
	out := r.RenderScreen(s)
	if got := countLines(out); got != 3 {
		t.Errorf("rendered %d lines, expected 3", got)
	}
	if !contains(out, "hi") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(r.styles))
	}
}
