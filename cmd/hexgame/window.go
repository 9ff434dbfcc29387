package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgame/internal/config"
	"github.com/vovakirdan/hexgame/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start hexgame in a resizable desktop window. The controls match
'hexgame play'; closing the window or pressing Q quits.

Examples:
  hexgame window
  hexgame window --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addSessionFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	settings, err := loadSettings(logger)
	if err != nil {
		fail("%v", err)
	}
	settings = applySessionFlags(settings, time.Now())

	w, h := settings.Window.Width, settings.Window.Height
	g, err := newGame(settings, config.FrontendWindow, float64(w), float64(h), logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := runtimeConfig(settings, w, h)
	if err := gfx.Run(g, layoutFunc(settings, config.FrontendWindow), cfg, logger); err != nil {
		fail("running game: %v", err)
	}
}
