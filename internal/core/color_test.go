package core

import (
	"image/color"
	"testing"
)

func TestBlend(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	tests := []struct {
		name     string
		dst, src color.NRGBA
		expected color.NRGBA
	}{
		{"opaque src wins", ColorBlack, red, red},
		{"transparent src keeps dst", red, color.NRGBA{G: 255}, red},
		{"half green over black", ColorBlack, color.NRGBA{G: 255, A: 128}, color.NRGBA{G: 128, A: 255}},
		{"half black over white", ColorWhite, WithAlpha(ColorBlack, 0.5), color.NRGBA{R: 127, G: 127, B: 127, A: 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Blend(tc.dst, tc.src)
			if got != tc.expected {
				t.Errorf("Blend(%v, %v) = %v, expected %v", tc.dst, tc.src, got, tc.expected)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	if c := WithAlpha(ColorWhite, 0.4); c.A != 102 {
		t.Errorf("WithAlpha(0.4).A = %d, expected 102", c.A)
	}
	if c := WithAlpha(ColorWhite, 7); c.A != 255 {
		t.Errorf("WithAlpha should clamp, got %d", c.A)
	}
}
