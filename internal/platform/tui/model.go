package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexgame/internal/core"
	"github.com/vovakirdan/hexgame/internal/game"
	"github.com/vovakirdan/hexgame/internal/hexgrid"
)

// Terminals report key presses and repeats but never releases. A key counts
// as held until no repeat has arrived for a while.
const (
	holdInitial = 300 * time.Millisecond // covers the delay before auto-repeat starts
	holdRepeat  = 120 * time.Millisecond
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running a game in the terminal.
type Model struct {
	game     *game.Game
	layout   game.LayoutFunc
	screen   *core.Screen
	canvas   *Canvas
	renderer *Renderer
	input    *core.InputHandler
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger

	held    map[core.Key]time.Time // release deadline per held key
	buttons map[core.Button]bool
	last    time.Time
	now     func() time.Time

	quitting bool
}

// NewModel creates a model for g. The screen starts at the size in cfg and
// follows the terminal afterwards; one row is kept for the help line.
func NewModel(g *game.Game, layout game.LayoutFunc, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	h := help.New()
	h.ShowAll = false

	return Model{
		game:     g,
		layout:   layout,
		screen:   screen,
		canvas:   NewCanvas(screen),
		renderer: NewRenderer(),
		input:    core.NewInputHandler(),
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		logger:   logger,
		held:     make(map[core.Key]time.Time),
		buttons:  make(map[core.Button]bool),
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		for _, e := range TranslateMouse(msg, m.buttons) {
			m.trackButton(e)
			m.input.Push(e)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Translate(msg)
	if k == core.KeyQuit {
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	now := m.now()
	if _, ok := m.held[k]; ok {
		m.held[k] = now.Add(holdRepeat)
		return m, nil
	}
	m.held[k] = now.Add(holdInitial)
	m.input.Push(core.Event{Kind: core.KeyPressed, Key: k})
	return m, nil
}

func (m *Model) trackButton(e core.Event) {
	switch e.Kind {
	case core.ButtonPressed:
		m.buttons[e.Button] = true
	case core.ButtonReleased:
		delete(m.buttons, e.Button)
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.layout != nil {
		l, err := m.layout(float64(m.screen.Width()), float64(m.screen.Height()))
		if err != nil {
			m.logger.Error("layout rejected after resize", "err", err)
			return m, nil
		}
		m.game.SetLayout(l)
	}
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick releases expired keys and steps the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	for k, deadline := range m.held {
		if now.After(deadline) {
			m.input.Push(core.Event{Kind: core.KeyReleased, Key: k})
			delete(m.held, k)
		}
	}

	f := m.frame()
	f.DT = m.config.ClampDelta(dt)
	m.game.Step(f)
	if m.game.Changed() {
		m.logger.Info("scene changed", "scene", m.game.Current())
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) frame() game.Frame {
	return game.Frame{
		Input:  m.input.Frame(),
		Width:  float64(m.screen.Width()),
		Height: float64(m.screen.Height()),
		Glyph:  hexgrid.Pt(1, 1),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := game.Frame{
		Width:  float64(m.screen.Width()),
		Height: float64(m.screen.Height()),
		Glyph:  hexgrid.Pt(1, 1),
	}
	m.game.Draw(f, m.canvas)

	return m.renderer.RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program.
func Run(g *game.Game, layout game.LayoutFunc, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	model := NewModel(g, layout, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and edge scrolling need motion without a button
	)

	logger.Info("terminal frontend started", "fps", cfg.TickRate)
	_, err := p.Run()
	logger.Info("terminal frontend stopped")
	return err
}
