package game

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/fsm"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
	"github.com/vovakirdan/hexgame/internal/region"
	"github.com/vovakirdan/hexgame/internal/terrain"
)

var background = color.NRGBA{R: 18, G: 22, B: 28, A: 255}

// GameplayOptions configures the map scene.
type GameplayOptions struct {
	World      *terrain.World
	Layout     hexgrid.Layout // grid placement with the camera at rest
	ScrollRate float64        // camera speed in screen units per second
	ScrollArea float64        // edge-scroll margin in screen units
	Logger     *log.Logger
}

// Gameplay is the map scene: a scrolling view of the world where the
// player selects cells.
type Gameplay struct {
	world      *terrain.World
	layout     hexgrid.Layout
	camera     hexgrid.Point
	scrollRate float64
	scrollArea float64

	selection *region.Region
	hover     *region.Region
	hovered   hexgrid.Hex
	hovering  bool

	logger *log.Logger
}

// NewGameplay builds the map scene.
func NewGameplay(opts GameplayOptions) *Gameplay {
	return &Gameplay{
		world:      opts.World,
		layout:     opts.Layout,
		scrollRate: opts.ScrollRate,
		scrollArea: opts.ScrollArea,
		selection:  region.New(region.Friendly),
		hover:      region.New(region.Player),
		logger:     opts.Logger,
	}
}

// Camera returns the scroll offset in screen units.
func (g *Gameplay) Camera() hexgrid.Point {
	return g.camera
}

// Selection returns the player's selected cells.
func (g *Gameplay) Selection() *region.Region {
	return g.selection
}

// Hover returns the cell under the pointer, if it is on the map.
func (g *Gameplay) Hover() (hexgrid.Hex, bool) {
	return g.hovered, g.hovering
}

// Layout returns the grid layout with the camera applied.
func (g *Gameplay) Layout() hexgrid.Layout {
	return g.layout.WithOrigin(g.layout.Origin().Sub(g.camera))
}

// SetLayout replaces the grid placement, for example after the screen was
// resized. The camera offset is kept.
func (g *Gameplay) SetLayout(l hexgrid.Layout) {
	g.layout = l
}

// CenterOn moves the camera so h is in the middle of the screen.
func (g *Gameplay) CenterOn(h hexgrid.Hex, f Frame) {
	p := g.layout.CenterPixel(h)
	c := f.Center()
	g.camera = hexgrid.Pt(p.X-c.X, p.Y-c.Y)
}

// Update scrolls the camera and applies pointer input to the selection.
// Enter or Space selects the hovered cell.
func (g *Gameplay) Update(f Frame) (fsm.Trans, bool) {
	in := f.Input
	if in.KeyPressedNow(core.KeyEscape) {
		return fsm.TransPause, true
	}

	dx, dy := g.scrollDir(f)
	ds := g.scrollRate * f.DT
	g.camera.X += dx * ds
	g.camera.Y += dy * ds

	l := g.Layout()
	for _, e := range in.Events {
		if e.Kind != core.ButtonPressed {
			continue
		}
		switch e.Button {
		case core.ButtonLeft:
			g.selectCell(l.PixelToHex(hexgrid.Pt(e.X, e.Y)))
		case core.ButtonRight:
			g.clearSelection()
		}
	}
	for _, click := range in.Clicks {
		if click.Button == core.ButtonMiddle {
			h := l.PixelToHex(hexgrid.Pt(click.X, click.Y))
			if g.world.Map.Contains(h) {
				g.CenterOn(h, f)
				l = g.Layout()
			}
		}
	}
	if in.KeyPressedNow(core.KeyClear) {
		g.clearSelection()
	}

	if in.HasPointer {
		h := l.PixelToHex(hexgrid.Pt(in.PointerX, in.PointerY))
		if in.ButtonDown(core.ButtonLeft) {
			g.selectCell(h)
		}
		g.setHover(h)
	}
	if g.hovering && (in.KeyPressedNow(core.KeyEnter) || in.KeyPressedNow(core.KeySpace)) {
		g.selectCell(g.hovered)
	}
	return 0, false
}

// scrollDir returns the scroll direction on each axis. Arrow keys take
// priority over the pointer resting near a screen edge.
func (g *Gameplay) scrollDir(f Frame) (float64, float64) {
	in := f.Input
	var dx, dy float64

	switch {
	case in.KeyDown(core.KeyLeft):
		dx = -1
	case in.KeyDown(core.KeyRight):
		dx = 1
	case in.HasPointer && g.scrollArea > 0 && in.PointerX < g.scrollArea:
		dx = -1
	case in.HasPointer && g.scrollArea > 0 && in.PointerX > f.Width-g.scrollArea:
		dx = 1
	}

	switch {
	case in.KeyDown(core.KeyUp):
		dy = -1
	case in.KeyDown(core.KeyDown):
		dy = 1
	case in.HasPointer && g.scrollArea > 0 && in.PointerY < g.scrollArea && in.PointerY > 0:
		dy = -1
	case in.HasPointer && g.scrollArea > 0 && in.PointerY > f.Height-g.scrollArea:
		dy = 1
	}
	return dx, dy
}

func (g *Gameplay) selectCell(h hexgrid.Hex) {
	if !g.world.Map.Contains(h) {
		return
	}
	if g.selection.Push(h) && g.logger != nil {
		g.logger.Debug("selection changed", "cells", g.selection.Len(), "added", h)
	}
}

func (g *Gameplay) clearSelection() {
	if g.selection.Len() == 0 {
		return
	}
	g.selection.Clear()
	if g.logger != nil {
		g.logger.Debug("selection cleared")
	}
}

func (g *Gameplay) setHover(h hexgrid.Hex) {
	on := g.world.Map.Contains(h)
	if on == g.hovering && h == g.hovered {
		return
	}
	g.hover.Clear()
	g.hovered, g.hovering = h, on
	if on {
		g.hover.Push(h)
	}
}

// Render draws the visible part of the map, the selection and the hover
// highlight, then a status line.
func (g *Gameplay) Render(f Frame, c Canvas) {
	c.Clear(background)

	l := g.Layout()
	view := ViewOf(f)
	for _, h := range g.world.Map.Cells() {
		lo, hi := l.BoundingBox(h)
		if !view.Overlaps(lo, hi) {
			continue
		}
		tile, _ := g.world.Tile(h)
		v := l.Vertices(h)
		c.FillPolygon(v[:], tile.Color())
	}

	drawRegion(c, l, view, g.selection)
	drawRegion(c, l, view, g.hover)

	c.DrawText(Text{
		Value: g.status(),
		X:     f.Glyph.X,
		Y:     0,
		Color: core.ColorWhite,
	})
}

func (g *Gameplay) status() string {
	s := fmt.Sprintf("selected %d", g.selection.Len())
	if g.hovering {
		tile, _ := g.world.Tile(g.hovered)
		s = fmt.Sprintf("%v %s/%s  %s", g.hovered, tile.Terrain, tile.Surface, s)
	}
	return s
}

func drawRegion(c Canvas, l hexgrid.Layout, view View, r *region.Region) {
	fill := r.Category().Fill()
	for _, poly := range r.Polygons(l) {
		lo, hi := boundsOf(poly[:])
		if !view.Overlaps(lo, hi) {
			continue
		}
		c.FillPolygon(poly[:], fill)
	}
	for _, seg := range r.OutlineSegments(l) {
		c.StrokeLine(seg, region.OutlineWidth, region.OutlineColor)
	}
}

func boundsOf(pts []hexgrid.Point) (hexgrid.Point, hexgrid.Point) {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
