package game

import (
	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/fsm"
)

var (
	pauseDim = core.WithAlpha(core.ColorBlack, 0.4)
	pauseBox = core.WithAlpha(core.ColorWhite, 0.8)
	pauseRim = core.ColorGray
)

// Pause dims whatever is below it on the stack and waits for Escape.
type Pause struct{}

// NewPause returns a pause overlay.
func NewPause() *Pause {
	return &Pause{}
}

// Update resumes on Escape.
func (p *Pause) Update(f Frame) (fsm.Trans, bool) {
	if f.Input.KeyPressedNow(core.KeyEscape) {
		return fsm.TransResume, true
	}
	return 0, false
}

// Render draws the overlay.
func (p *Pause) Render(f Frame, c Canvas) {
	c.FillRect(0, 0, f.Width, f.Height, pauseDim)

	w, h := 20*f.Glyph.X, 5*f.Glyph.Y
	center := f.Center()
	c.FillRect(center.X-w/2, center.Y-h/2, w, h, pauseBox)
	c.StrokeRect(center.X-w/2, center.Y-h/2, w, h, 2, pauseRim)
	c.DrawText(Text{
		Value: "PAUSED",
		X:     center.X,
		Y:     center.Y - f.Glyph.Y/2,
		Align: AlignCenter,
		Large: true,
		Color: core.ColorBlack,
	})
}
