package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It mirrors defaults/tetris.yaml and is used if the embedded file fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: TetrisGameplay{
			TickMillis: 333,
			BaseScore:  100,
		},
		Sound: SoundConfig{
			Enabled: false,
			Music:   false,
			Volume:  0.5,
		},
		Keys: KeyBindings{
			MoveLeft:  []string{"left", "a"},
			MoveRight: []string{"right", "d"},
			RotateCW:  []string{"e", "up"},
			RotateCCW: []string{"q"},
			SoftDrop:  []string{"down", "s"},
			HardDrop:  []string{"x", " "},
			Start:     []string{"enter"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
			Quit:      []string{"ctrl+c"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
				MinTickMillis:   80,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
