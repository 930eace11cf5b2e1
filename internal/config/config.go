// Package config provides YAML-based game configuration loading for the
// snake simulation.
package config

import "time"

// GameConfig contains all configuration for the snake simulation.
type GameConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the fixed tick interval.
type TimingConfig struct {
	TickMs int `yaml:"tick_ms"`
}

// TickInterval returns the tick interval as a duration.
func (c GameConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// Normalize replaces out-of-range values with defaults so a partial or
// malformed config file cannot produce an unplayable board.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()
	if c.Grid.Width < minGridSide {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < minGridSide {
		c.Grid.Height = def.Grid.Height
	}
	if c.Snake.InitialLength < 1 || c.Snake.InitialLength > c.Grid.Width/2 {
		c.Snake.InitialLength = def.Snake.InitialLength
	}
	if c.Timing.TickMs <= 0 {
		c.Timing.TickMs = def.Timing.TickMs
	}
}

// minGridSide is the smallest playable board side. The snake spawns
// horizontally centered, so the grid must at least fit it with headroom.
const minGridSide = 8
