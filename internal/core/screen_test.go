package core

import "testing"

// row returns the runes of row y.
func row(s *Screen, y int) string {
	out := make([]rune, s.Width())
	for x := range out {
		out[x] = s.GetCell(x, y).Rune
	}
	return string(out)
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if s.Bounds() != NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.BG != ColorBlack {
				t.Fatalf("new cell (%d, %d) = %+v, expected blank on black", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorAmber)

	if got := row(s, 1)[2:7]; got != "Hello" {
		t.Errorf("row 1 = %q", row(s, 1))
	}
	if c := s.GetCell(2, 1); c.FG != ColorAmber {
		t.Errorf("text FG = %v, expected amber", c.FG)
	}

	// Clipped at the right edge
	s.DrawTextColor(18, 0, "Hello", ColorWhite)
	if got := row(s, 0)[18:]; got != "He" {
		t.Errorf("clipped text = %q, expected \"He\"", got)
	}

	// Off screen entirely
	s.DrawTextColor(-10, -1, "x", ColorWhite)
}

func TestScreenTintRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.TintRect(NewRect(-2, -2, 5, 4), ColorWhite)

	tests := []struct {
		x, y   int
		tinted bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 1, false},
		{2, 2, false},
	}
	for _, tc := range tests {
		got := s.GetCell(tc.x, tc.y).BG == ColorWhite
		if got != tc.tinted {
			t.Errorf("cell (%d, %d) tinted = %v, expected %v", tc.x, tc.y, got, tc.tinted)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorAmber)

	expected := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" │   │    ",
		" └───┘    ",
		"          ",
	}
	for y, want := range expected {
		if got := row(s, y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(1, 1); c.FG != ColorAmber {
		t.Errorf("box FG = %v, expected amber", c.FG)
	}

	// Partly off screen must not panic and still draws the visible part.
	s.DrawBox(NewRect(7, 7, 6, 6), ColorWhite)
	if s.GetCell(7, 7).Rune != '┌' || s.GetCell(9, 7).Rune != '─' {
		t.Error("visible part of the clipped box missing")
	}

	s.DrawBox(NewRect(0, 0, 0, 3), ColorWhite)
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("empty box should draw nothing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorWhite)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after shrink size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := row(s, 0); got != "Hello   " {
		t.Errorf("row 0 after shrink = %q", got)
	}

	s.Resize(15, 8)
	if got := row(s, 0)[:5]; got != "Hello" {
		t.Errorf("row 0 after grow = %q", row(s, 0))
	}
	if c := s.GetCell(14, 7); c.Rune != ' ' || c.BG != ColorBlack {
		t.Errorf("new area cell = %+v, expected blank", c)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)

	s.Tint(1, 0, WithAlpha(ColorWhite, 1))
	if c := s.GetCell(1, 0); c.BG != ColorWhite {
		t.Errorf("opaque tint BG = %v, expected white", c.BG)
	}

	s.Tint(2, 0, WithAlpha(ColorWhite, 0.5))
	if c := s.GetCell(2, 0); c.BG.R < 120 || c.BG.R > 135 || c.BG.A != 255 {
		t.Errorf("half tint BG = %v, expected mid gray", c.BG)
	}

	s.SetFG(3, 1, '*', ColorAmber)
	if c := s.GetCell(3, 1); c.Rune != '*' || c.FG != ColorAmber {
		t.Errorf("SetFG cell = %+v", c)
	}

	s.ClearTo(ColorGray)
	if c := s.GetCell(3, 1); c.BG != ColorGray || c.Rune != ' ' {
		t.Errorf("after ClearTo cell = %+v", c)
	}

	if c := s.GetCell(-1, 5); c.Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}
