package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newTestGame(t *testing.T, list []string, shapes ShapeSource) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultTetrisConfig(), list)
	if shapes != nil {
		g.SetShapes(shapes)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	g.Reset(cfg)
	return g
}

type frameRecorder struct {
	frames []Frame
}

func (r *frameRecorder) Render(f Frame) { r.frames = append(r.frames, f) }

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("tetris"))
	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestGameHandlePhases(t *testing.T) {
	g := newTestGame(t, nil, nil)

	assert.False(t, g.State().Running)
	assert.False(t, g.Step().Changed, "idle game does not tick")

	res := g.Handle(core.ActionStart)
	assert.True(t, res.Changed)
	assert.True(t, res.State.Running)

	res = g.Handle(core.ActionPause)
	assert.True(t, res.State.Paused)
	assert.False(t, res.State.Running)

	res = g.Handle(core.ActionPause)
	assert.True(t, res.State.Running, "pause toggles back")

	assert.False(t, g.Handle(core.ActionRestart).Changed, "restart needs game over")
	assert.False(t, g.Handle(core.ActionQuit).Changed)
}

func TestGameMovesAndDrops(t *testing.T) {
	g := newTestGame(t, nil, NewSequence(ShapeO))
	g.Handle(core.ActionStart)
	require.True(t, g.Step().Changed)

	x := g.Board().Active().Anchor().X
	require.True(t, g.Handle(core.ActionMoveLeft).Changed)
	assert.Equal(t, x-1, g.Board().Active().Anchor().X)
	require.True(t, g.Handle(core.ActionMoveRight).Changed)
	assert.Equal(t, x, g.Board().Active().Anchor().X)

	require.True(t, g.Handle(core.ActionHardDrop).Changed)
	assert.Equal(t, Rows-2, g.Board().Active().Anchor().Y)
	assert.False(t, g.Handle(core.ActionHardDrop).Changed, "already resting")
	assert.True(t, g.Handle(core.ActionSoftDrop).Changed, "soft drop locks the resting piece")
	assert.Nil(t, g.Board().Active())
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, []string{"BRAVO"}, NewSequence(ShapeO))
	rec := &frameRecorder{}
	g.SetRenderer(rec)

	g.Handle(core.ActionStart)
	require.True(t, g.Board().settled.Put(Block{Pos: Coord{X: 4, Y: 0}}))

	res := g.Step()
	assert.True(t, res.Changed)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Running)
	require.NotEmpty(t, rec.frames)
	assert.Equal(t, PhaseGameOver, rec.frames[len(rec.frames)-1].Phase)

	res = g.Handle(core.ActionRestart)
	assert.True(t, res.Changed)
	assert.True(t, res.State.Running)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 0, g.Board().Settled().Len())
}

func TestGameRowClearRevealsWord(t *testing.T) {
	g := newTestGame(t, []string{"BRAVO"}, nil)
	var cleared []int
	g.Subscribe(func(e Event) {
		if rc, ok := e.(RowCleared); ok {
			cleared = append(cleared, rc.Row)
		}
	})

	assert.Equal(t, "", g.Frame().Bonus)
	fillRow(t, g.Board(), 19, Columns)
	fillRow(t, g.Board(), 18, Columns)
	g.Board().CheckRows()

	assert.Equal(t, "BRAVO", g.Frame().Bonus)
	assert.Equal(t, 2, g.Panel().Revealed())
	assert.Equal(t, []int{18, 19}, cleared)
	assert.Equal(t, 300, g.State().Score)
}

func TestGameSubscriptionsSurviveRestart(t *testing.T) {
	g := newTestGame(t, nil, NewSequence(ShapeO))
	gameOvers := 0
	g.Subscribe(func(e Event) {
		if _, ok := e.(GameOver); ok {
			gameOvers++
		}
	})

	for range 2 {
		if g.State().GameOver {
			g.Handle(core.ActionRestart)
		} else {
			g.Handle(core.ActionStart)
		}
		require.True(t, g.Board().settled.Put(Block{Pos: Coord{X: 4, Y: 1}}))
		g.Step()
		require.True(t, g.State().GameOver)
	}
	assert.Equal(t, 2, gameOvers)
}

func TestGameEmptyWordList(t *testing.T) {
	g := newTestGame(t, nil, nil)
	fillRow(t, g.Board(), 19, Columns)

	assert.NotPanics(t, func() { g.Board().CheckRows() })
	assert.Equal(t, "", g.Frame().Bonus)
}

func TestGameInterval(t *testing.T) {
	g := newTestGame(t, nil, nil)
	assert.Equal(t, 333*time.Millisecond, g.Interval())

	cfg := config.DefaultTetrisConfig()
	config.ApplyTetrisPreset(&cfg, config.DifficultyHard)
	fast := NewWithConfig(cfg, nil)
	fast.Reset(core.RuntimeConfig{Seed: 1, TickInterval: 400 * time.Millisecond})
	assert.Less(t, fast.Interval(), 400*time.Millisecond)
	assert.GreaterOrEqual(t, fast.Interval(), 80*time.Millisecond)
}

func TestGameDeterministic(t *testing.T) {
	script := []core.Action{
		core.ActionStart, core.ActionMoveLeft, core.ActionRotateCW, core.ActionHardDrop,
		core.ActionMoveRight, core.ActionMoveRight, core.ActionRotateCCW, core.ActionSoftDrop,
	}
	run := func() Snapshot {
		g := newTestGame(t, []string{"A", "B"}, nil)
		for i := range 300 {
			g.Handle(script[i%len(script)])
			g.Step()
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, nil, nil)

	dst := core.NewScreen(MinScreenW, MinScreenH)
	g.Render(dst)
	out := dst.String()
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Tetris count: 0")
	assert.Contains(t, out, "BONUS")
	assert.Contains(t, out, "READY")

	g.Handle(core.ActionStart)
	g.Step()
	g.Render(dst)
	assert.NotContains(t, dst.String(), "READY")
	assert.Contains(t, dst.String(), "█")

	small := core.NewScreen(20, 10)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "too small"))
}
