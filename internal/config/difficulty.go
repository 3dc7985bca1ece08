package config

import (
	"math"
	"time"
)

// defaultMinInterval bounds gravity when the config does not.
const defaultMinInterval = 50 * time.Millisecond

// DifficultyManager derives the gravity interval from game progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// When progression is disabled the level is pinned at zero, so the base
// interval is used unchanged.
func (d *DifficultyManager) Level(score, lines, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "lines":
		progress = float64(lines) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns the gravity interval for the current progress.
// Gravity speeds up from base to base/(1+speedMultiplier), floored at min_tick_ms.
func (d *DifficultyManager) Interval(base time.Duration, score, lines, ticks int) time.Duration {
	level := d.Level(score, lines, ticks)
	if level == 0 {
		return base
	}

	interval := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))

	floor := defaultMinInterval
	if d.cfg.Scaling.MinTickMillis > 0 {
		floor = time.Duration(d.cfg.Scaling.MinTickMillis) * time.Millisecond
	}
	if interval < floor {
		interval = floor
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
