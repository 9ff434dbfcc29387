package game

import (
	"fmt"

	"github.com/vovakirdan/hexgame/internal/fsm"
)

// Kind identifies one of the four scenes.
type Kind int

const (
	KindOpening Kind = iota
	KindTitle
	KindGameplay
	KindPause
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOpening:
		return "Opening"
	case KindTitle:
		return "Title"
	case KindGameplay:
		return "Gameplay"
	case KindPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Scene is the state handler registered with the machine. Exactly one of
// the pointers is set, matching Kind.
type Scene struct {
	Kind     Kind
	Opening  *Opening
	Title    *Title
	Gameplay *Gameplay
	Pause    *Pause
}

// Update advances the scene by one frame. It returns a transition symbol
// when the scene wants the machine to move.
func (s *Scene) Update(f Frame) (fsm.Trans, bool) {
	switch s.Kind {
	case KindOpening:
		return s.Opening.Update(f)
	case KindTitle:
		return s.Title.Update(f)
	case KindGameplay:
		return s.Gameplay.Update(f)
	case KindPause:
		return s.Pause.Update(f)
	default:
		panic(fmt.Sprintf("game: unknown scene kind %d", s.Kind))
	}
}

// Render draws the scene.
func (s *Scene) Render(f Frame, c Canvas) {
	switch s.Kind {
	case KindOpening:
		s.Opening.Render(f, c)
	case KindTitle:
		s.Title.Render(f, c)
	case KindGameplay:
		s.Gameplay.Render(f, c)
	case KindPause:
		s.Pause.Render(f, c)
	default:
		panic(fmt.Sprintf("game: unknown scene kind %d", s.Kind))
	}
}
