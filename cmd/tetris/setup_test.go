package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "palabras.txt")
	if err := os.WriteFile(wordsPath, []byte("HOLA\nGENIAL\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	on := true
	var buf bytes.Buffer
	st, err := loadSettings(flagValues{
		words:      wordsPath,
		difficulty: "hard",
		sound:      &on,
	}, log.New(&buf))
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}

	if len(st.words) != 2 || st.words[0] != "HOLA" {
		t.Errorf("words = %v, expected [HOLA GENIAL]", st.words)
	}
	if !st.cfg.Difficulty.Enabled || st.cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("difficulty = %+v, expected hard preset", st.cfg.Difficulty)
	}
	if !st.cfg.Sound.Enabled {
		t.Error("sound flag did not override config")
	}
}

func TestLoadSettingsMissingWords(t *testing.T) {
	var buf bytes.Buffer
	st, err := loadSettings(flagValues{
		words: filepath.Join(t.TempDir(), "missing.txt"),
	}, log.New(&buf))
	if err != nil {
		t.Fatalf("missing words should not be fatal: %v", err)
	}
	if len(st.words) != 0 {
		t.Errorf("words = %v, expected empty", st.words)
	}
	if !strings.Contains(buf.String(), "bonus words unavailable") {
		t.Errorf("expected a warning, log = %q", buf.String())
	}
}

func TestLoadSettingsBadDifficulty(t *testing.T) {
	var buf bytes.Buffer
	if _, err := loadSettings(flagValues{difficulty: "insane"}, log.New(&buf)); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := flagValues{tickMS: 250, seed: 9}.runtimeConfig(100, 40)
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 250ms", cfg.TickInterval)
	}
	if cfg.Seed != 9 || cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("runtimeConfig() = %+v", cfg)
	}
	if got := (flagValues{}).runtimeConfig(1, 1).TickInterval; got != 0 {
		t.Errorf("TickInterval without flag = %v, expected 0 (use config)", got)
	}
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	fn := eventLogger(logger)
	fn(tetris.RowCleared{Row: 7})
	fn(tetris.TetrisCountChanged{Count: 2})
	fn(tetris.GameOver{Score: 900})

	out := buf.String()
	for _, want := range []string{"row cleared", "row=7", "tetris!", "game over", "score=900"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestPrintWords(t *testing.T) {
	var buf bytes.Buffer
	printWords(&buf, "embedded", []string{"WOW", "SUPERB"})

	out := buf.String()
	for _, want := range []string{"Bonus words (2) from embedded", "WOW", "SUPERB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger, closeLog, err := newLogger("")
	if err != nil || logger == nil {
		t.Fatalf("newLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "tetris.log")
	logger, closeLog, err = newLogger(path)
	if err != nil {
		t.Fatalf("newLogger(path) error = %v", err)
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected debug line", data)
	}
}
