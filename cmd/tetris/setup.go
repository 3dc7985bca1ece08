package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/words"
)

// settings is the resolved configuration for one run.
type settings struct {
	cfg   config.TetrisConfig
	words []string
}

// flagValues mirrors the global flags so resolution can be tested.
type flagValues struct {
	config     string
	words      string
	difficulty string
	sound      *bool // nil when the flag was not given
	tickMS     int
	seed       int64
}

func currentFlags(cmd *cobra.Command) flagValues {
	fv := flagValues{
		config:     flagConfig,
		words:      flagWords,
		difficulty: flagDifficulty,
		tickMS:     flagTickMS,
		seed:       flagSeed,
	}
	if cmd.Flags().Changed("sound") {
		fv.sound = &flagSound
	}
	return fv
}

// loadSettings loads config and words. A broken config file is fatal; a
// missing word list only costs the bonus panel and is logged.
func loadSettings(fv flagValues, logger *log.Logger) (settings, error) {
	cfg, err := config.LoadTetris(fv.config)
	if err != nil {
		return settings{}, err
	}

	if fv.difficulty != "" {
		preset := config.ParsePreset(fv.difficulty)
		if preset == "" {
			return settings{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", fv.difficulty)
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if fv.sound != nil {
		cfg.Sound.Enabled = *fv.sound
	}

	wordsPath := fv.words
	if wordsPath == "" {
		wordsPath = cfg.Words.Path
	}
	list, err := words.Load(wordsPath)
	if err != nil {
		logger.Warn("bonus words unavailable, panel stays blank", "error", err)
		list = nil
	} else {
		logger.Debug("bonus words loaded", "source", words.Source(wordsPath), "count", len(list))
	}

	tetris.Configure(cfg, list)
	return settings{cfg: cfg, words: list}, nil
}

// runtimeConfig builds the per-game runtime config.
func (fv flagValues) runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW: w,
		ScreenH: h,
		Seed:    fv.seed,
	}
	if fv.tickMS > 0 {
		cfg.TickInterval = time.Duration(fv.tickMS) * time.Millisecond
	}
	return cfg
}

// newLogger writes to path when given and discards otherwise; the
// frontends own the terminal.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// eventLogger returns a board subscriber that logs every event.
func eventLogger(logger *log.Logger) func(tetris.Event) {
	return func(e tetris.Event) {
		switch e := e.(type) {
		case tetris.PhaseChanged:
			logger.Debug("phase", "from", e.From, "to", e.To)
		case tetris.Spawned:
			logger.Debug("spawned", "shape", e.Shape, "next", e.Next)
		case tetris.Locked:
			logger.Debug("locked", "at", e.Blocks[0].Pos)
		case tetris.RowCleared:
			logger.Debug("row cleared", "row", e.Row)
		case tetris.RowsCleared:
			logger.Debug("rows cleared", "count", e.Count)
		case tetris.ScoreChanged:
			logger.Debug("score", "score", e.Score, "delta", e.Delta)
		case tetris.TetrisCountChanged:
			logger.Info("tetris!", "count", e.Count)
		case tetris.GameOver:
			logger.Info("game over", "score", e.Score)
		}
	}
}
