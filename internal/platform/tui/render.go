package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexgame/internal/core"
)

type stylePair struct {
	fg, bg color.NRGBA
}

// Renderer converts a Screen buffer to a styled string. It caches one
// lipgloss style per colour pair.
type Renderer struct {
	styles map[stylePair]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[stylePair]lipgloss.Style)}
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (r *Renderer) style(p stylePair) lipgloss.Style {
	if s, ok := r.styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hexColor(p.fg)).Background(hexColor(p.bg))
	r.styles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := stylePair{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != start.fg || cell.BG != start.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
