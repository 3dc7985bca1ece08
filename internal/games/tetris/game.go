package tetris

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/words"
)

// Package-level settings applied by the CLI before games are created.
var (
	settingsMu sync.RWMutex
	settings   *config.TetrisConfig
	wordList   []string
)

// Configure sets the config and bonus word list used by New.
// A nil list keeps the panel blank.
func Configure(cfg config.TetrisConfig, list []string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = &cfg
	wordList = append([]string(nil), list...)
}

func currentSettings() (config.TetrisConfig, []string) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if settings == nil {
		list, _ := words.EmbeddedProvider{}.Words()
		return config.DefaultTetrisConfig(), list
	}
	return *settings, wordList
}

// Game adapts a Board to the platform: it owns the word panel, maps
// actions to board operations and derives the gravity interval.
type Game struct {
	cfg        config.TetrisConfig
	words      []string
	shapes     ShapeSource
	difficulty *config.DifficultyManager

	rng          *rand.Rand
	board        *Board
	panel        *words.Panel
	baseInterval time.Duration

	renderer    Renderer
	subscribers []func(Event)
}

// New creates a game from the package-level settings.
func New() *Game {
	cfg, list := currentSettings()
	return NewWithConfig(cfg, list)
}

// NewWithConfig creates a game with an explicit config and word list.
// Reset must be called before use.
func NewWithConfig(cfg config.TetrisConfig, list []string) *Game {
	return &Game{
		cfg:        cfg,
		words:      append([]string(nil), list...),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// SetShapes replaces the random piece source from the next Reset on.
func (g *Game) SetShapes(src ShapeSource) { g.shapes = src }

// SetRenderer installs a renderer that receives a frame after every change.
func (g *Game) SetRenderer(r Renderer) { g.renderer = r }

// Subscribe registers fn for board events. Subscriptions survive Reset.
func (g *Game) Subscribe(fn func(Event)) {
	if fn != nil {
		g.subscribers = append(g.subscribers, fn)
	}
}

// Reset starts a fresh idle session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.baseInterval = cfg.TickInterval
	if g.baseInterval <= 0 {
		g.baseInterval = g.cfg.Gameplay.TickInterval()
	}

	g.panel = words.NewPanel(g.words, g.rng.Int63())
	g.newBoard()
	g.push()
}

// newBoard replaces the board, keeping the panel and subscribers.
func (g *Game) newBoard() {
	opts := Options{
		Seed:      g.rng.Int63(),
		BaseScore: g.cfg.Gameplay.BaseScore,
		Shapes:    g.shapes,
	}
	g.board = NewBoard(opts)
	g.board.Subscribe(g.dispatch)
}

func (g *Game) dispatch(e Event) {
	if _, ok := e.(RowCleared); ok {
		g.panel.Reveal()
	}
	for _, fn := range g.subscribers {
		fn(e)
	}
}

// Handle applies one player action.
func (g *Game) Handle(a core.Action) core.StepResult {
	changed := false
	b := g.board

	switch a {
	case core.ActionStart:
		changed = b.Start()
	case core.ActionPause:
		if b.Phase() == PhasePaused {
			changed = b.Start()
		} else {
			changed = b.Pause()
		}
	case core.ActionMoveLeft:
		changed = b.MoveActive(DirLeft)
	case core.ActionMoveRight:
		changed = b.MoveActive(DirRight)
	case core.ActionRotateCW:
		changed = b.RotateActive(1)
	case core.ActionRotateCCW:
		changed = b.RotateActive(-1)
	case core.ActionSoftDrop:
		changed = b.SoftDrop() != TickResult{}
	case core.ActionHardDrop:
		changed = b.HardDrop() > 0
	case core.ActionRestart:
		if b.Phase() == PhaseGameOver {
			g.restart()
			changed = true
		}
	}

	if changed {
		g.push()
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// restart begins a new running session with a reseeded board and panel.
func (g *Game) restart() {
	g.panel.Reseed(g.rng.Int63())
	g.newBoard()
	g.board.Start()
}

// Step advances gravity by one tick.
func (g *Game) Step() core.StepResult {
	res := g.board.Tick()
	changed := res != TickResult{}
	if changed {
		g.push()
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// Interval returns the gravity interval for the current progress.
func (g *Game) Interval() time.Duration {
	b := g.board
	return g.difficulty.Interval(g.baseInterval, b.Score(), b.Lines(), int(b.Ticks()))
}

// Frame returns the board scenes with the bonus word filled in.
func (g *Game) Frame() Frame {
	f := g.board.Frame()
	f.Bonus = g.panel.Word()
	return f
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	NewScreenRenderer(dst).Render(g.Frame())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	b := g.board
	return core.GameState{
		Score:       b.Score(),
		TetrisCount: b.TetrisCount(),
		Running:     b.Phase() == PhaseRunning,
		Paused:      b.Phase() == PhasePaused,
		GameOver:    b.Phase() == PhaseGameOver,
	}
}

// Snapshot returns a copy of the board state.
func (g *Game) Snapshot() Snapshot { return g.board.Snapshot() }

// Board exposes the underlying session.
func (g *Game) Board() *Board { return g.board }

// Panel exposes the bonus word panel.
func (g *Game) Panel() *words.Panel { return g.panel }

func (g *Game) push() {
	if g.renderer != nil {
		g.renderer.Render(g.Frame())
	}
}
