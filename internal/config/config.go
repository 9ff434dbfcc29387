// Package config provides YAML-based settings loading and validation for
// hexgame.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Settings is the full configuration of a session.
type Settings struct {
	TickRate          int     `yaml:"tick_rate"`
	MaxDelta          float64 `yaml:"max_delta"`
	ScrollRate        float64 `yaml:"scroll_rate"`
	ScrollArea        float64 `yaml:"scroll_area"`
	OpeningSeconds    float64 `yaml:"opening_seconds"`
	TitleBlinkSeconds float64 `yaml:"title_blink_seconds"`

	Map      MapSettings      `yaml:"map"`
	Window   WindowSettings   `yaml:"window"`
	Terminal TerminalSettings `yaml:"terminal"`
}

// MapSettings defines the generated world.
type MapSettings struct {
	Radius int   `yaml:"radius"`
	Seed   int64 `yaml:"seed"` // 0 means pick from the clock
}

// WindowSettings defines the desktop frontend.
type WindowSettings struct {
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	Layout LayoutSettings `yaml:"layout"`
}

// TerminalSettings defines the terminal frontend. Its size comes from the
// terminal itself.
type TerminalSettings struct {
	Layout LayoutSettings `yaml:"layout"`
}

// LayoutSettings describes a hexgrid.Layout.
type LayoutSettings struct {
	Orientation string `yaml:"orientation"` // "pointy" or "flat"
	Radius      Vec    `yaml:"radius"`
	Origin      *Vec   `yaml:"origin,omitempty"` // nil centres the grid on screen
}

// Vec is a 2D vector in frontend units.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Frontend selects which layout block applies.
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

func (l LayoutSettings) orientation() (hexgrid.Orientation, error) {
	switch strings.ToLower(l.Orientation) {
	case "pointy", "pointy-top", "":
		return hexgrid.PointyTop, nil
	case "flat", "flat-top":
		return hexgrid.FlatTop, nil
	default:
		return hexgrid.Orientation{}, fmt.Errorf("%w: unknown orientation %q", ErrInvalid, l.Orientation)
	}
}

func (l LayoutSettings) validate(name string) error {
	if _, err := l.orientation(); err != nil {
		return fmt.Errorf("%s.layout: %w", name, err)
	}
	if l.Radius.X <= 0 || l.Radius.Y <= 0 {
		return fmt.Errorf("%w: %s.layout.radius must be positive, got (%g, %g)",
			ErrInvalid, name, l.Radius.X, l.Radius.Y)
	}
	return nil
}

// Validate checks the settings for values no frontend can run with.
func (s Settings) Validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, s.TickRate)
	}
	if s.MaxDelta <= 0 {
		return fmt.Errorf("%w: max_delta must be positive, got %g", ErrInvalid, s.MaxDelta)
	}
	if s.ScrollRate < 0 || s.ScrollArea < 0 {
		return fmt.Errorf("%w: scroll_rate and scroll_area must not be negative", ErrInvalid)
	}
	if s.OpeningSeconds <= 0 || s.TitleBlinkSeconds <= 0 {
		return fmt.Errorf("%w: opening_seconds and title_blink_seconds must be positive", ErrInvalid)
	}
	if s.Map.Radius <= 0 {
		return fmt.Errorf("%w: map.radius must be positive, got %d", ErrInvalid, s.Map.Radius)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if err := s.Window.Layout.validate("window"); err != nil {
		return err
	}
	return s.Terminal.Layout.validate("terminal")
}

// LayoutSettings returns the layout block for a frontend.
func (s Settings) LayoutSettings(f Frontend) LayoutSettings {
	if f == FrontendTerminal {
		return s.Terminal.Layout
	}
	return s.Window.Layout
}

// LayoutFor builds the grid layout for a frontend whose screen is w by h
// units. Without an explicit origin the grid is centred on screen.
func (s Settings) LayoutFor(f Frontend, w, h float64) (hexgrid.Layout, error) {
	ls := s.LayoutSettings(f)
	o, err := ls.orientation()
	if err != nil {
		return hexgrid.Layout{}, fmt.Errorf("%s.layout: %w", f, err)
	}
	origin := hexgrid.Pt(w/2, h/2)
	if ls.Origin != nil {
		origin = hexgrid.Pt(ls.Origin.X, ls.Origin.Y)
	}
	layout, err := hexgrid.NewLayout(o, hexgrid.Pt(ls.Radius.X, ls.Radius.Y), origin)
	if err != nil {
		return hexgrid.Layout{}, fmt.Errorf("%s.layout: %w", f, err)
	}
	return layout, nil
}

// unitScale converts window pixels into the units of frontend f, using the
// ratio of hex radii so scrolling covers the same number of cells.
func (s Settings) unitScale(f Frontend) float64 {
	if f != FrontendTerminal || s.Window.Layout.Radius.X <= 0 {
		return 1
	}
	return s.Terminal.Layout.Radius.X / s.Window.Layout.Radius.X
}

// ScrollRateFor returns the camera speed in units of frontend f per second.
func (s Settings) ScrollRateFor(f Frontend) float64 {
	return s.ScrollRate * s.unitScale(f)
}

// ScrollAreaFor returns the edge-scroll margin in units of frontend f. It is
// never less than one unit when scroll_area is set.
func (s Settings) ScrollAreaFor(f Frontend) float64 {
	if s.ScrollArea == 0 {
		return 0
	}
	return max(s.ScrollArea*s.unitScale(f), 1)
}
