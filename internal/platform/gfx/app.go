// Package gfx runs hexgame in a desktop window with Ebitengine. One screen
// unit is one logical window pixel.
package gfx

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// App adapts a game to ebiten.Game.
type App struct {
	game   *game.Game
	layout game.LayoutFunc
	canvas *Canvas
	glyph  hexgrid.Point
	input  *core.InputHandler
	poller poller
	config core.RuntimeConfig
	logger *log.Logger

	width, height int
}

func newApp(g *game.Game, layout game.LayoutFunc, cfg core.RuntimeConfig, glyph hexgrid.Point, logger *log.Logger) *App {
	return &App{
		game:   g,
		layout: layout,
		glyph:  glyph,
		input:  core.NewInputHandler(),
		config: cfg,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Update polls input and steps the game by one tick.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() || a.poller.poll(a.input) {
		a.game.Stop()
		return ebiten.Termination
	}

	f := a.frame()
	f.Input = a.input.Frame()
	f.DT = a.config.ClampDelta(1 / float64(ebiten.TPS()))
	a.game.Step(f)
	if a.game.Changed() {
		a.logger.Info("scene changed", "scene", a.game.Current())
	}
	return nil
}

// Draw renders the UI stack.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.game.Draw(a.frame(), a.canvas)
}

// Layout follows the window size one to one and rebuilds the grid layout
// when it changes.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.resize(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	if a.layout == nil {
		return
	}
	l, err := a.layout(float64(w), float64(h))
	if err != nil {
		a.logger.Error("layout rejected after resize", "err", err)
		return
	}
	a.game.SetLayout(l)
	a.logger.Debug("window resized", "width", w, "height", h)
}

func (a *App) frame() game.Frame {
	return game.Frame{
		Width:  float64(a.width),
		Height: float64(a.height),
		Glyph:  a.glyph,
	}
}

// Run opens a window of cfg.ScreenW by cfg.ScreenH and runs g until the
// window is closed or quit is pressed.
func Run(g *game.Game, layout game.LayoutFunc, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	fonts, err := LoadFonts()
	if err != nil {
		return err
	}

	app := newApp(g, layout, cfg, fonts.Glyph(), logger)
	app.canvas = NewCanvas(fonts)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle("hexgame")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("window frontend started", "width", cfg.ScreenW, "height", cfg.ScreenH, "tps", cfg.TickRate)
	err = ebiten.RunGame(app)
	logger.Info("window frontend stopped")
	return err
}
