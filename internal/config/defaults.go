package config

import (
	_ "embed"
)

//go:embed defaults/snakecad.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default snake configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
		},
		Timing: TimingConfig{
			TickMs: 100,
		},
	}
}
