// Package terrain generates the landscape under the hex grid.
package terrain

import "image/color"

// Terrain is the landform of a cell.
type Terrain int

const (
	Water Terrain = iota
	Basin
	Plain
	Hill
	Plateau
)

// String returns a human-readable name for the terrain.
func (t Terrain) String() string {
	switch t {
	case Water:
		return "Water"
	case Basin:
		return "Basin"
	case Plain:
		return "Plain"
	case Hill:
		return "Hill"
	case Plateau:
		return "Plateau"
	default:
		return "Unknown"
	}
}

// Surface is what covers a cell.
type Surface int

const (
	Soil Surface = iota
	Grass
	Forest
	Sand
	Snow
	Ice
)

// String returns a human-readable name for the surface.
func (s Surface) String() string {
	switch s {
	case Soil:
		return "Soil"
	case Grass:
		return "Grass"
	case Forest:
		return "Forest"
	case Sand:
		return "Sand"
	case Snow:
		return "Snow"
	case Ice:
		return "Ice"
	default:
		return "Unknown"
	}
}

// Tile is the generated content of one cell.
type Tile struct {
	Terrain   Terrain
	Surface   Surface
	Elevation float64 // 0..1
	Moisture  float64 // 0..1
}

var surfaceColors = [...]color.NRGBA{
	Soil:   {R: 121, G: 85, B: 58, A: 255},
	Grass:  {R: 96, G: 156, B: 64, A: 255},
	Forest: {R: 34, G: 100, B: 52, A: 255},
	Sand:   {R: 214, G: 196, B: 138, A: 255},
	Snow:   {R: 236, G: 240, B: 244, A: 255},
	Ice:    {R: 176, G: 214, B: 230, A: 255},
}

var waterColor = color.NRGBA{R: 38, G: 84, B: 150, A: 255}

// Color returns the base fill of the tile. Higher ground is drawn lighter.
func (t Tile) Color() color.NRGBA {
	if t.Terrain == Water {
		return waterColor
	}
	c := surfaceColors[t.Surface]
	shade := 0.85 + 0.1*float64(t.Terrain-Basin)
	scale := func(v uint8) uint8 {
		f := float64(v) * shade
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 255}
}
