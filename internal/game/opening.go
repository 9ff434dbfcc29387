package game

import (
	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/fsm"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Opening shows the logo, fading it in and out.
type Opening struct {
	total     float64
	remaining float64
}

// NewOpening returns an opening that lasts seconds.
func NewOpening(seconds float64) *Opening {
	return &Opening{total: seconds, remaining: seconds}
}

// Update counts down and moves to the title when time is up or Escape is
// released.
func (o *Opening) Update(f Frame) (fsm.Trans, bool) {
	if f.Input.KeyReleasedNow(core.KeyEscape) {
		return fsm.TransTitle, true
	}
	o.remaining -= f.DT
	if o.remaining < 0 {
		return fsm.TransTitle, true
	}
	return 0, false
}

// MaskAlpha returns the opacity of the black mask over the logo. It ramps
// down over the first quarter and back up over the last.
func (o *Opening) MaskAlpha() float64 {
	p := o.total / 4
	elapsed := o.total - o.remaining
	switch {
	case elapsed < p:
		return 1 - elapsed/p
	case o.remaining < p:
		return core.ClampF(1-o.remaining/p, 0, 1)
	default:
		return 0
	}
}

// Render draws the logo: a single hexagon over the game name.
func (o *Opening) Render(f Frame, c Canvas) {
	c.Clear(core.ColorBlack)

	center := f.Center()
	size := 3 * f.Glyph.Y
	logo, err := hexgrid.NewLayout(hexgrid.PointyTop, hexgrid.Pt(6*f.Glyph.X, size), center)
	if err == nil {
		v := logo.Vertices(hexgrid.Hex{})
		c.FillPolygon(v[:], core.ColorAmber)
		for _, e := range logo.Edges(hexgrid.Hex{}) {
			c.StrokeLine(e, 2, core.ColorWhite)
		}
	}
	c.DrawText(Text{
		Value: "HEXGAME",
		X:     center.X,
		Y:     center.Y + size + f.Glyph.Y,
		Align: AlignCenter,
		Large: true,
		Color: core.ColorWhite,
	})

	c.FillRect(0, 0, f.Width, f.Height, core.WithAlpha(core.ColorBlack, o.MaskAlpha()))
}
