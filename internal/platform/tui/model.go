package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	Keys   KeyMap      // zero value uses DefaultKeyMap
	Logger *log.Logger // nil discards
}

// Model is the Bubble Tea model for running a game.
//
// The gravity timer is a chain of one-shot tick commands. A new chain is
// started whenever the game is running without one; bumping gen orphans any
// tick still in flight, which is how pause stops the timer.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	gen      int
	ticking  bool
	lastOver bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config: cfg,
		keys:   keys,
		help:   h,
		logger: logger,
	}
}

// Init resets the game. The timer starts once the game is running.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "game", m.game.ID(), "seed", m.config.Seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.logger.Debug("action", "key", msg.String(), "action", action)
	res := m.game.Handle(action)
	m.observe(res.State)
	return m.schedule(res.State)
}

// handleTick processes gravity ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	m.ticking = false

	state := m.game.State()
	if !state.Running {
		return m, nil
	}

	res := m.game.Step()
	m.observe(res.State)
	return m.schedule(res.State)
}

// schedule keeps exactly one tick chain alive while the game runs.
func (m Model) schedule(state core.GameState) (tea.Model, tea.Cmd) {
	if !state.Running {
		if m.ticking {
			m.gen++
			m.ticking = false
		}
		return m, nil
	}
	if m.ticking {
		return m, nil
	}
	m.gen++
	m.ticking = true
	return m, tickCmd(m.gen, m.game.Interval())
}

// observe logs the transition into game over once per game.
func (m *Model) observe(state core.GameState) {
	if state.GameOver && !m.lastOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", state.Score, "tetris_count", state.TetrisCount)
	}
	m.lastOver = state.GameOver
}

// Ticking reports whether a gravity tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
