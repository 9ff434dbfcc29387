package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexgame/internal/config"
	"github.com/vovakirdan/hexgame/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start hexgame in the terminal.

Controls:
  Arrows/WASD   - Scroll (or move the mouse to the screen edge)
  Left click    - Select a cell (drag to select more)
  Right click/C - Clear the selection
  Middle click  - Centre on a cell
  Esc           - Skip the intro / pause / resume
  ?             - Toggle help
  Q/Ctrl+C      - Quit

Logs go to --log-file so they do not disturb the screen.

Examples:
  hexgame play
  hexgame play --seed 42
  hexgame play --fps 30 --skip-intro`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSessionFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("play needs a terminal; try 'hexgame window'")
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	settings, err := loadSettings(logger)
	if err != nil {
		fail("%v", err)
	}
	settings = applySessionFlags(settings, time.Now())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// One row is kept for the help line.
	g, err := newGame(settings, config.FrontendTerminal, float64(width), float64(max(height-1, 1)), logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := runtimeConfig(settings, width, height)
	if err := tui.Run(g, layoutFunc(settings, config.FrontendTerminal), cfg, logger); err != nil {
		logger.Error("terminal frontend failed", "err", err)
		closeLog()
		fail("running game: %v", err)
	}
}
