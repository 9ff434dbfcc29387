package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Elevation thresholds between terrain bands.
const (
	seaLevel     = 0.34
	basinLevel   = 0.42
	plainLevel   = 0.62
	hillLevel    = 0.78
	noiseScale   = 0.18
	moistureSeed = 7919
)

// World is a generated map.
type World struct {
	Map   *hexgrid.Map
	Seed  int64
	tiles []Tile
}

// Generate builds the tiles of every cell on m from two noise layers,
// elevation and moisture. The same seed always yields the same world.
func Generate(m *hexgrid.Map, seed int64) *World {
	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + moistureSeed)

	w := &World{Map: m, Seed: seed, tiles: make([]Tile, m.Len())}
	radius := float64(max(m.Radius(), 1))

	for i, h := range m.Cells() {
		// Axial to cartesian so the noise field is not skewed.
		x := float64(h.Q()) + float64(h.R())*0.5
		y := float64(h.R()) * hexgrid.Sqrt3 / 2

		elev := octaveNoise(elevNoise, x, y, 4, noiseScale, 0.5)
		moist := octaveNoise(moistNoise, x, y, 3, noiseScale*0.8, 0.5)

		// Sink the rim so the map reads as an island.
		dist := float64(h.Length()) / radius
		elev *= 1 - math.Pow(dist, 4)*0.6

		w.tiles[i] = classify(elev, moist)
	}
	return w
}

// Tile returns the tile at h and whether h is on the map.
func (w *World) Tile(h hexgrid.Hex) (Tile, bool) {
	i := w.Map.Index(h)
	if i < 0 {
		return Tile{}, false
	}
	return w.tiles[i], true
}

// Counts returns how many cells have each terrain.
func (w *World) Counts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range w.tiles {
		counts[t.Terrain]++
	}
	return counts
}

func classify(elev, moist float64) Tile {
	t := Tile{Elevation: elev, Moisture: moist}
	switch {
	case elev < seaLevel:
		t.Terrain = Water
	case elev < basinLevel:
		t.Terrain = Basin
	case elev < plainLevel:
		t.Terrain = Plain
	case elev < hillLevel:
		t.Terrain = Hill
	default:
		t.Terrain = Plateau
	}

	switch {
	case t.Terrain == Water && moist < 0.3:
		t.Surface = Ice
	case t.Terrain == Water:
		t.Surface = Soil
	case t.Terrain == Basin:
		t.Surface = Sand
	case t.Terrain == Plateau && moist > 0.5:
		t.Surface = Snow
	case t.Terrain == Plateau:
		t.Surface = Soil
	case moist > 0.6:
		t.Surface = Forest
	case moist > 0.35:
		t.Surface = Grass
	default:
		t.Surface = Soil
	}
	return t
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
