package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/sound"
)

// holdTicks is how long a horizontal key press keeps the paddle moving.
// Terminals only report key repeats, never a held key.
const holdTicks = 8

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model running one Arkanoid session.
type Model struct {
	game     *arkanoid.Game
	screen   *core.Screen
	player   *sound.Player
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	dir      core.Action // Last horizontal direction pressed
	hold     int         // Ticks left for dir
	phase    arkanoid.Phase
	quitting bool
}

// NewModel creates a model for the game. player may be nil for silent play.
func NewModel(game *arkanoid.Game, player *sound.Player, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		player: player,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		phase:  arkanoid.PhaseTitle,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the pressed action into the next tick's input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.dir = action
		m.hold = holdTicks
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse toggles mute when the mute button is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.MuteButtonCells(m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
		m.input.Set(core.ActionMute)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The playfield is scaled, so the
// session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and plays the cues it raised.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hold > 0 {
		m.input.Set(m.dir)
		m.hold--
	}

	result := m.game.Step(m.input)
	m.input.Clear()

	if m.player != nil {
		m.player.SetMuted(m.game.Muted())
		m.player.PlayAll(result.Events)
	}

	if phase := m.game.Phase(); phase != m.phase {
		m.logger.Debug("phase changed",
			"from", m.phase,
			"to", phase,
			"score", result.State.Score,
			"level", result.State.Level,
			"lives", result.State.Lives,
		)
		m.phase = phase
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := ""
	if m.game.Phase() == arkanoid.PhaseTitle {
		footer = helpStyle.Render(m.help.View(m.keys))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program and closes the sound player on exit.
func Run(game *arkanoid.Game, player *sound.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	if player != nil {
		defer player.Close()
	}

	model := NewModel(game, player, logger, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if err != nil {
		logger.Error("program exited", "error", err)
	}
	return err
}
