// Package term runs a game directly on a tcell screen. It is the
// alternative to the Bubble Tea frontend for terminals where a full-screen
// redraw per message is too slow.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options configures the frontend.
type Options struct {
	Keys   core.KeyTable
	Logger *log.Logger // nil discards
}

// Frontend drives one game on one tcell screen.
//
// All game calls happen on the Loop goroutine. A second goroutine only
// forwards PollEvent results.
type Frontend struct {
	screen tcell.Screen
	game   registry.Game
	buf    *core.Screen
	keys   core.KeyTable
	logger *log.Logger

	timer  *time.Timer
	timerC <-chan time.Time
}

// New wraps an initialized screen.
func New(screen tcell.Screen, game registry.Game, opts Options) *Frontend {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := screen.Size()
	return &Frontend{
		screen: screen,
		game:   game,
		buf:    core.NewScreen(w, h),
		keys:   opts.Keys,
		logger: logger,
	}
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, game, opts).Loop(context.Background(), cfg)
}

// Loop resets the game and serves events and gravity ticks until the quit
// action, ctx cancellation or the screen closing.
func (f *Frontend) Loop(ctx context.Context, cfg core.RuntimeConfig) error {
	w, h := f.screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	f.game.Reset(cfg)
	f.Draw()

	done := make(chan struct{})
	defer close(done)
	defer f.disarm()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}

		case <-f.timerC:
			f.timerC = nil
			f.game.Step()
		}

		f.syncTimer()
		f.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		action := f.keys.Lookup(name)
		switch action {
		case core.ActionNone:
			return false
		case core.ActionQuit:
			return true
		}
		f.logger.Debug("action", "key", name, "action", action)
		res := f.game.Handle(action)
		if res.State.GameOver {
			f.logger.Info("game over", "score", res.State.Score)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		f.buf.Resize(w, h)
		f.screen.Sync()
	}
	return false
}

// syncTimer arms the gravity timer while running and disarms it otherwise.
func (f *Frontend) syncTimer() {
	running := f.game.State().Running
	switch {
	case running && f.timerC == nil:
		f.timer = time.NewTimer(f.game.Interval())
		f.timerC = f.timer.C
	case !running && f.timerC != nil:
		f.disarm()
	}
}

func (f *Frontend) disarm() {
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timerC = nil
}

// Armed reports whether a gravity tick is pending.
func (f *Frontend) Armed() bool {
	return f.timerC != nil
}

// Draw renders the game and flushes it to the terminal.
func (f *Frontend) Draw() {
	f.game.Render(f.buf)
	Blit(f.screen, f.buf)
	f.screen.Show()
}

// Blit copies every cell of src onto dst.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
}

// Style converts a core color to a tcell style.
func Style(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// KeyName spells a tcell key event the way core.KeyTable expects.
// Unsupported keys return "".
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return ""
	}
}
