package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexgame/internal/core"
)

// KeyMap defines the key bindings of the terminal frontend.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Pause  key.Binding
	Select key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Clear, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "scroll right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/skip"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("click/enter", "select cell"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c/right click", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key message to the key the game sees.
func (k KeyMap) Translate(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Pause):
		return core.KeyEscape
	case key.Matches(msg, k.Clear):
		return core.KeyClear
	case msg.Type == tea.KeyEnter:
		return core.KeyEnter
	case msg.Type == tea.KeySpace || msg.String() == " ":
		return core.KeySpace
	default:
		return core.KeyOther
	}
}

// TranslateMouse maps a mouse message to input events. Terminal cells are
// reported by their centre. A release that does not name its button
// releases every button in held.
func TranslateMouse(msg tea.MouseMsg, held map[core.Button]bool) []core.Event {
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch msg.Action {
	case tea.MouseActionMotion:
		return []core.Event{{Kind: core.PointerMoved, X: x, Y: y}}

	case tea.MouseActionPress:
		b, ok := mouseButton(msg.Button)
		if !ok {
			// Wheel and extra buttons only move the pointer.
			return []core.Event{{Kind: core.PointerMoved, X: x, Y: y}}
		}
		return []core.Event{{Kind: core.ButtonPressed, Button: b, X: x, Y: y}}

	case tea.MouseActionRelease:
		if b, ok := mouseButton(msg.Button); ok {
			return []core.Event{{Kind: core.ButtonReleased, Button: b, X: x, Y: y}}
		}
		var events []core.Event
		for _, b := range []core.Button{core.ButtonLeft, core.ButtonRight, core.ButtonMiddle} {
			if held[b] {
				events = append(events, core.Event{Kind: core.ButtonReleased, Button: b, X: x, Y: y})
			}
		}
		return events
	}
	return nil
}

func mouseButton(b tea.MouseButton) (core.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft, true
	case tea.MouseButtonRight:
		return core.ButtonRight, true
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle, true
	default:
		return 0, false
	}
}
