package config

import (
	_ "embed"
)

//go:embed defaults/hexgame.yaml
var defaultYAML []byte

// Default returns the built-in settings. It matches defaults/hexgame.yaml.
func Default() Settings {
	return Settings{
		TickRate:          60,
		MaxDelta:          0.1,
		ScrollRate:        240,
		ScrollArea:        5,
		OpeningSeconds:    2.0,
		TitleBlinkSeconds: 1.0,
		Map: MapSettings{
			Radius: 5,
			Seed:   0,
		},
		Window: WindowSettings{
			Width:  960,
			Height: 720,
			Layout: LayoutSettings{
				Orientation: "pointy",
				Radius:      Vec{X: 20, Y: 20},
			},
		},
		Terminal: TerminalSettings{
			Layout: LayoutSettings{
				Orientation: "pointy",
				Radius:      Vec{X: 4, Y: 2},
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
