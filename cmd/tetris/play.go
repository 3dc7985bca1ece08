package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	tfront "github.com/vovakirdan/tui-tetris/internal/platform/term"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/sound"
)

const (
	frontendBubbleTea = "bubbletea"
	frontendTcell     = "tcell"
	defaultGame       = "tetris"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to tetris.

Controls (configurable under keys: in the config file):
  Left/A, Right/D   - Move
  E/Up, Q           - Rotate clockwise, counter-clockwise
  Down/S            - Drop one row
  X/Space           - Hard drop
  Enter             - Start
  P/Esc             - Pause / resume
  R                 - Restart (after game over)
  Ctrl+C            - Quit

Difficulty options:
  easy   - Normal gravity, speeds up as rows are cleared
  normal - Starts at 30% of the speed-up
  hard   - Starts at 70% of the speed-up
  fixed  - Gravity never changes

Examples:
  tetris play
  tetris play --difficulty hard --tick-ms 250
  tetris play --frontend tcell
  tetris play --words ./palabras.txt --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// subscriber is implemented by games that publish board events.
type subscriber interface {
	Subscribe(fn func(tetris.Event))
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fv := currentFlags(cmd)
	st, err := loadSettings(fv, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := fv.runtimeConfig(width, height)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if sub, ok := game.(subscriber); ok {
		sub.Subscribe(eventLogger(logger))

		if st.cfg.Sound.Enabled {
			sm := sound.NewSoundManager(st.cfg.Sound)
			if soundErr := sm.Initialize(); soundErr != nil {
				// Non-fatal, game can run without sound
				logger.Warn("audio initialization failed", "error", soundErr)
			} else {
				defer sm.Close()
				sub.Subscribe(sm.Handle)
			}
		}
	}

	logger.Info("starting", "game", gameID, "frontend", flagFrontend, "seed", cfg.Seed)

	var runErr error
	switch flagFrontend {
	case frontendBubbleTea, "":
		runErr = tui.Run(game, cfg, tui.Options{
			Keys:   tui.NewKeyMap(st.cfg.Keys),
			Logger: logger,
		})
	case frontendTcell:
		runErr = tfront.Run(game, cfg, tfront.Options{
			Keys:   st.cfg.Keys.Table(),
			Logger: logger,
		})
	default:
		runErr = fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendBubbleTea, frontendTcell)
	}

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}

	state := game.State()
	logger.Info("session finished", "score", state.Score, "tetris_count", state.TetrisCount)
	fmt.Printf("Score: %d  Tetris count: %d\n", state.Score, state.TetrisCount)
}
