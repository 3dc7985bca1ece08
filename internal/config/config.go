// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gameplay   TetrisGameplay   `yaml:"gameplay"`
	Words      WordsConfig      `yaml:"words"`
	Sound      SoundConfig      `yaml:"sound"`
	Keys       KeyBindings      `yaml:"keys"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGameplay defines the simulation parameters.
type TetrisGameplay struct {
	TickMillis int `yaml:"tick_ms"`    // Gravity interval in milliseconds
	BaseScore  int `yaml:"base_score"` // Points per cleared row before the half bonus
}

// TickInterval returns the gravity interval, falling back to the default.
func (g TetrisGameplay) TickInterval() time.Duration {
	if g.TickMillis <= 0 {
		return core.DefaultTickInterval
	}
	return time.Duration(g.TickMillis) * time.Millisecond
}

// WordsConfig points at the bonus word list.
type WordsConfig struct {
	Path string `yaml:"path"` // Empty means search the default locations
}

// SoundConfig controls the optional audio cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`  // Loop a quiet background track
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// KeyBindings lists the keys for each action, in Bubble Tea key spelling.
type KeyBindings struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	SoftDrop  []string `yaml:"soft_drop"`
	HardDrop  []string `yaml:"hard_drop"`
	Start     []string `yaml:"start"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// Bindings returns the per-action key lists.
func (k KeyBindings) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionMoveLeft:  k.MoveLeft,
		core.ActionMoveRight: k.MoveRight,
		core.ActionRotateCW:  k.RotateCW,
		core.ActionRotateCCW: k.RotateCCW,
		core.ActionSoftDrop:  k.SoftDrop,
		core.ActionHardDrop:  k.HardDrop,
		core.ActionStart:     k.Start,
		core.ActionPause:     k.Pause,
		core.ActionRestart:   k.Restart,
		core.ActionQuit:      k.Quit,
	}
}

// Table builds the lookup table used by the frontends.
func (k KeyBindings) Table() core.KeyTable {
	return core.NewKeyTable(k.Bindings())
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up at max difficulty
	MinTickMillis   int     `yaml:"min_tick_ms"`      // Floor for the gravity interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
