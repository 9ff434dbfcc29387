package core

import "image/color"

// Palette used by text and chrome on both frontends.
var (
	ColorBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorGray  = color.NRGBA{R: 138, G: 138, B: 138, A: 255}
	ColorAmber = color.NRGBA{R: 255, G: 176, B: 0, A: 255}
)

// Blend composites src over dst using src's alpha. The result is opaque
// when dst is opaque.
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(ClampF(v+0.5, 0, 255))
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(ClampF(oa*255+0.5, 0, 255)),
	}
}

// WithAlpha returns c with its alpha replaced by a (0..1).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(ClampF(a, 0, 1)*255 + 0.5)
	return c
}
