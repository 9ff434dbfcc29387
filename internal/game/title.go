package game

import (
	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/fsm"
)

const (
	gameTitle   = "HEXGAME"
	titlePrompt = "Press Any Key"
)

var promptColor = core.WithAlpha(core.ColorWhite, 0.8)

// Title shows the game name and a blinking prompt.
type Title struct {
	blink      float64
	timer      float64
	showPrompt bool
}

// NewTitle returns a title screen whose prompt toggles every blink seconds.
func NewTitle(blink float64) *Title {
	return &Title{blink: blink, showPrompt: true}
}

// ShowPrompt reports whether the prompt is visible.
func (t *Title) ShowPrompt() bool {
	return t.showPrompt
}

// Update blinks the prompt. Any key press starts the game.
func (t *Title) Update(f Frame) (fsm.Trans, bool) {
	if f.Input.AnyKeyPressed() {
		return fsm.TransGameplay, true
	}
	t.timer += f.DT
	if t.timer > t.blink {
		t.showPrompt = !t.showPrompt
		t.timer = 0
	}
	return 0, false
}

// Render draws the title and, while it is visible, the prompt.
func (t *Title) Render(f Frame, c Canvas) {
	c.Clear(core.ColorBlack)
	center := f.Center()
	c.DrawText(Text{
		Value: gameTitle,
		X:     center.X,
		Y:     center.Y - 4*f.Glyph.Y,
		Align: AlignCenter,
		Large: true,
		Color: core.ColorWhite,
	})
	if t.showPrompt {
		c.DrawText(Text{
			Value: titlePrompt,
			X:     center.X,
			Y:     center.Y + 2*f.Glyph.Y,
			Align: AlignCenter,
			Color: promptColor,
		})
	}
}
