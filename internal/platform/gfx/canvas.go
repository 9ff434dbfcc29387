package gfx

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

const (
	textSize  = 16
	largeSize = 48
)

// Fonts holds the two text faces the canvas draws with.
type Fonts struct {
	Normal *text.GoTextFace
	Large  *text.GoTextFace
}

// LoadFonts parses the embedded Go Mono font.
func LoadFonts() (Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("gfx: load font: %w", err)
	}
	return Fonts{
		Normal: &text.GoTextFace{Source: src, Size: textSize},
		Large:  &text.GoTextFace{Source: src, Size: largeSize},
	}, nil
}

// Glyph returns the size of one character of the normal face.
func (f Fonts) Glyph() hexgrid.Point {
	m := f.Normal.Metrics()
	return hexgrid.Pt(text.Advance("M", f.Normal), m.HAscent+m.HDescent)
}

// Canvas draws game frames on an Ebitengine image.
type Canvas struct {
	target *ebiten.Image
	white  *ebiten.Image
	fonts  Fonts

	vs []ebiten.Vertex
	is []uint16
}

// NewCanvas creates a canvas. Call SetTarget before drawing.
func NewCanvas(fonts Fonts) *Canvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Canvas{
		white: white,
		fonts: fonts,
		vs:    make([]ebiten.Vertex, 0, 18),
		is:    make([]uint16, 0, 18),
	}
}

// SetTarget sets the image the next draw calls go to.
func (cv *Canvas) SetTarget(img *ebiten.Image) {
	cv.target = img
}

// Clear fills the whole target with c.
func (cv *Canvas) Clear(c color.NRGBA) {
	cv.target.Fill(c)
}

// FillRect fills an axis-aligned rectangle.
func (cv *Canvas) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(cv.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect outlines an axis-aligned rectangle with a stroke of width
// pixels.
func (cv *Canvas) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	vector.StrokeRect(cv.target, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

// FillPolygon fills the closed path through pts.
func (cv *Canvas) FillPolygon(pts []hexgrid.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	cv.vs, cv.is = path.AppendVerticesAndIndicesForFilling(cv.vs[:0], cv.is[:0])
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range cv.vs {
		cv.vs[i].ColorR = r
		cv.vs[i].ColorG = g
		cv.vs[i].ColorB = b
		cv.vs[i].ColorA = a
	}
	cv.target.DrawTriangles(cv.vs, cv.is, cv.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokeLine draws an antialiased segment width pixels thick.
func (cv *Canvas) StrokeLine(seg hexgrid.PointPair, width float64, c color.NRGBA) {
	vector.StrokeLine(cv.target,
		float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y),
		float32(width), c, true)
}

// DrawText draws one line in the normal or large face.
func (cv *Canvas) DrawText(t game.Text) {
	face := cv.fonts.Normal
	if t.Large {
		face = cv.fonts.Large
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(t.Color)
	if t.Align == game.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(cv.target, t.Value, face, op)
}
