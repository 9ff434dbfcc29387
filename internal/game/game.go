// Package game wires the four scenes of hexgame into a pushdown state
// machine and steps them one frame at a time. It knows nothing about the
// frontend beyond the Frame it is handed and the Canvas it draws on.
package game

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexgame/internal/fsm"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Options configures a Game.
type Options struct {
	OpeningSeconds    float64
	TitleBlinkSeconds float64
	Gameplay          GameplayOptions
	SkipIntro         bool // start on the title screen
	Logger            *log.Logger
}

// Game owns the state machine and the scenes registered with it.
type Game struct {
	machine *fsm.Machine[*Scene]
	ids     map[Kind]fsm.StateID
	logger  *log.Logger
}

// New builds the scenes, registers them and starts the machine.
func New(opts Options) (*Game, error) {
	if opts.Gameplay.World == nil {
		return nil, errors.New("game: gameplay needs a world")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Gameplay.Logger == nil {
		opts.Gameplay.Logger = logger
	}

	g := &Game{
		machine: fsm.New[*Scene](),
		ids:     make(map[Kind]fsm.StateID, 4),
		logger:  logger,
	}

	g.ids[KindOpening] = g.machine.AddState(&Scene{Kind: KindOpening, Opening: NewOpening(opts.OpeningSeconds)}, false)
	g.ids[KindTitle] = g.machine.AddState(&Scene{Kind: KindTitle, Title: NewTitle(opts.TitleBlinkSeconds)}, false)
	g.ids[KindGameplay] = g.machine.AddState(&Scene{Kind: KindGameplay, Gameplay: NewGameplay(opts.Gameplay)}, true)
	g.ids[KindPause] = g.machine.AddState(&Scene{Kind: KindPause, Pause: NewPause()}, false)

	g.machine.AddTrans(g.ids[KindOpening], g.ids[KindTitle], fsm.TransTitle)
	g.machine.AddTrans(g.ids[KindTitle], g.ids[KindGameplay], fsm.TransGameplay)
	g.machine.AddTrans(g.ids[KindGameplay], g.ids[KindPause], fsm.TransPause)
	g.machine.AddTrans(g.ids[KindPause], g.ids[KindGameplay], fsm.TransResume)

	initial := KindOpening
	if opts.SkipIntro {
		initial = KindTitle
	}
	g.machine.SetInitial(g.ids[initial])
	g.machine.Start()
	g.machine.TakeChanged()

	logger.Debug("game started", "scene", initial)
	return g, nil
}

// Step runs input handling and update for the current scene, then applies
// the transition it asked for.
func (g *Game) Step(f Frame) {
	var (
		symbol fsm.Trans
		move   bool
	)
	g.machine.Update(func(_ fsm.StateID, s *Scene) {
		symbol, move = s.Update(f)
	})
	if !move {
		return
	}

	from := g.Current()
	if g.machine.Feed(symbol) {
		g.logger.Debug("state transition", "from", from, "to", g.Current(), "symbol", symbol)
	}
}

// Draw renders every scene on the UI stack, bottom first.
func (g *Game) Draw(f Frame, c Canvas) {
	g.machine.Render(func(_ fsm.StateID, s *Scene) {
		s.Render(f, c)
	})
}

// Current returns the kind of the scene receiving input.
func (g *Game) Current() Kind {
	return g.machine.Handler(g.machine.Current()).Kind
}

// Stack returns the kinds on the UI stack, bottom first.
func (g *Game) Stack() []Kind {
	ids := g.machine.UIStack()
	out := make([]Kind, len(ids))
	for i, id := range ids {
		out[i] = g.machine.Handler(id).Kind
	}
	return out
}

// Changed reports whether the scene changed since the last call.
func (g *Game) Changed() bool {
	return g.machine.TakeChanged()
}

// Scene returns the scene of the given kind.
func (g *Game) Scene(k Kind) *Scene {
	return g.machine.Handler(g.ids[k])
}

// Gameplay returns the map scene.
func (g *Game) Gameplay() *Gameplay {
	return g.Scene(KindGameplay).Gameplay
}

// SetLayout replaces the grid layout of the map scene.
func (g *Game) SetLayout(l hexgrid.Layout) {
	g.Gameplay().SetLayout(l)
}

// Stop freezes the machine. Step and Draw do nothing afterwards.
func (g *Game) Stop() {
	if g.machine.Running() {
		g.machine.Stop()
		g.logger.Debug("game stopped", "scene", g.Current())
	}
}

// Running reports whether the game accepts frames.
func (g *Game) Running() bool {
	return g.machine.Running()
}
