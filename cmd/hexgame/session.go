package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgame/internal/config"
	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
	"github.com/vovakirdan/hexgame/internal/terrain"
)

// Session flags shared by play and window.
var (
	flagFPS       int
	flagSeed      int64
	flagSkipIntro bool
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from settings)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "Map seed (0 = from settings, then time)")
	cmd.Flags().BoolVar(&flagSkipIntro, "skip-intro", false, "Start on the title screen")
}

// applySessionFlags overrides settings with flags that were set and picks a
// seed when none is configured.
func applySessionFlags(s config.Settings, now time.Time) config.Settings {
	if flagFPS > 0 {
		s.TickRate = flagFPS
	}
	if flagSeed != 0 {
		s.Map.Seed = flagSeed
	}
	if s.Map.Seed == 0 {
		s.Map.Seed = now.UnixNano()
	}
	return s
}

// layoutFunc returns the layout builder for frontend f.
func layoutFunc(s config.Settings, f config.Frontend) game.LayoutFunc {
	return func(w, h float64) (hexgrid.Layout, error) {
		return s.LayoutFor(f, w, h)
	}
}

// newGame generates the world and builds a game for a screen of w by h
// units of frontend f.
func newGame(s config.Settings, f config.Frontend, w, h float64, logger *log.Logger) (*game.Game, error) {
	m, err := hexgrid.NewMap(s.Map.Radius)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	layout, err := s.LayoutFor(f, w, h)
	if err != nil {
		return nil, err
	}
	world := terrain.Generate(m, s.Map.Seed)

	logger.Info("world generated", "radius", s.Map.Radius, "cells", m.Len(), "seed", s.Map.Seed)
	logger.Debug("layout", "frontend", f,
		"radius", layout.Radius(), "origin", layout.Origin(), "start_angle", layout.Orientation().StartAngle())

	return game.New(game.Options{
		OpeningSeconds:    s.OpeningSeconds,
		TitleBlinkSeconds: s.TitleBlinkSeconds,
		SkipIntro:         flagSkipIntro,
		Logger:            logger,
		Gameplay: game.GameplayOptions{
			World:      world,
			Layout:     layout,
			ScrollRate: s.ScrollRateFor(f),
			ScrollArea: s.ScrollAreaFor(f),
		},
	})
}

// runtimeConfig collects what a frontend loop needs.
func runtimeConfig(s config.Settings, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: s.TickRate,
		Seed:     s.Map.Seed,
		MaxDelta: s.MaxDelta,
	}
}
