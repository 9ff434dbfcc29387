package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/hexgame/internal/core"
)

// keyOf maps an Ebitengine key to the key the game sees.
func keyOf(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyEscape:
		return core.KeyEscape
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return core.KeyEnter
	case ebiten.KeySpace:
		return core.KeySpace
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return core.KeyUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return core.KeyDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.KeyRight
	case ebiten.KeyC:
		return core.KeyClear
	case ebiten.KeyQ:
		return core.KeyQuit
	default:
		return core.KeyOther
	}
}

var mouseButtons = []struct {
	eb   ebiten.MouseButton
	core core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonLeft},
	{ebiten.MouseButtonRight, core.ButtonRight},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
}

// poller turns Ebitengine's polled input state into events.
type poller struct {
	keys  []ebiten.Key
	x, y  int
	moved bool
}

// poll pushes this tick's events into h and reports whether quit was
// pressed.
func (p *poller) poll(h *core.InputHandler) bool {
	x, y := ebiten.CursorPosition()
	if !p.moved || x != p.x || y != p.y {
		p.x, p.y, p.moved = x, y, true
		h.Push(core.Event{Kind: core.PointerMoved, X: float64(x), Y: float64(y)})
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			h.Push(core.Event{Kind: core.ButtonPressed, Button: mb.core, X: float64(x), Y: float64(y)})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			h.Push(core.Event{Kind: core.ButtonReleased, Button: mb.core, X: float64(x), Y: float64(y)})
		}
	}

	quit := false
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		key := keyOf(k)
		if key == core.KeyQuit {
			quit = true
			continue
		}
		h.Push(core.Event{Kind: core.KeyPressed, Key: key})
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key := keyOf(k); key != core.KeyQuit {
			h.Push(core.Event{Kind: core.KeyReleased, Key: key})
		}
	}
	return quit
}
