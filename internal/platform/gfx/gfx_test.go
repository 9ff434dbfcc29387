package gfx

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
	"github.com/vovakirdan/hexgame/internal/terrain"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		in       ebiten.Key
		expected core.Key
	}{
		{ebiten.KeyEscape, core.KeyEscape},
		{ebiten.KeyEnter, core.KeyEnter},
		{ebiten.KeyNumpadEnter, core.KeyEnter},
		{ebiten.KeySpace, core.KeySpace},
		{ebiten.KeyArrowUp, core.KeyUp},
		{ebiten.KeyW, core.KeyUp},
		{ebiten.KeyS, core.KeyDown},
		{ebiten.KeyArrowLeft, core.KeyLeft},
		{ebiten.KeyD, core.KeyRight},
		{ebiten.KeyC, core.KeyClear},
		{ebiten.KeyQ, core.KeyQuit},
		{ebiten.KeyF1, core.KeyOther},
	}

	for _, tc := range tests {
		t.Run(tc.in.String(), func(t *testing.T) {
			if got := keyOf(tc.in); got != tc.expected {
				t.Errorf("keyOf(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestFontsGlyph(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts() error: %v", err)
	}
	g := fonts.Glyph()
	if g.X <= 0 || g.Y <= g.X {
		t.Errorf("glyph = %v, expected a positive cell taller than wide", g)
	}
}

func TestAppLayoutFollowsWindow(t *testing.T) {
	m, err := hexgrid.NewMap(2)
	if err != nil {
		t.Fatal(err)
	}
	layout := func(w, h float64) (hexgrid.Layout, error) {
		return hexgrid.NewLayout(hexgrid.PointyTop, hexgrid.Pt(20, 20), hexgrid.Pt(w/2, h/2))
	}
	l, err := layout(640, 480)
	if err != nil {
		t.Fatal(err)
	}
	g, err := game.New(game.Options{
		OpeningSeconds:    1,
		TitleBlinkSeconds: 1,
		Logger:            log.New(io.Discard),
		Gameplay:          game.GameplayOptions{World: terrain.Generate(m, 1), Layout: l},
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := core.RuntimeConfig{ScreenW: 640, ScreenH: 480, TickRate: 60, MaxDelta: 0.1}
	app := newApp(g, layout, cfg, hexgrid.Pt(8, 16), log.New(io.Discard))

	if w, h := app.Layout(640, 480); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, expected 640x480", w, h)
	}
	if w, h := app.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
	if o := g.Gameplay().Layout().Origin(); o != hexgrid.Pt(400, 300) {
		t.Errorf("grid origin = %v, expected the new window centre", o)
	}

	f := app.frame()
	if f.Width != 800 || f.Height != 600 || f.Glyph != hexgrid.Pt(8, 16) {
		t.Errorf("frame = %+v", f)
	}
}
