// Package tui provides the Bubble Tea frontend for hexgame.
// It handles the terminal UI loop, input mapping and rasterising the game's
// draw calls into a character screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
