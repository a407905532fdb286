// Package config provides YAML-based configuration loading for the apples
// board: grid size, removal timing and on-screen tile layout.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MaxCells bounds the grid size. The hit tester re-scans every tile on each
// pointer move, which is only meant for a few hundred tiles.
const MaxCells = 400

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Layout LayoutConfig `yaml:"layout"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the deferred presentation delays.
type TimingConfig struct {
	RemovalDelayMS    int `yaml:"removal_delay_ms"`
	CompletionDelayMS int `yaml:"completion_delay_ms"`
}

// LayoutConfig defines how many terminal cells each tile occupies.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// RemovalDelay returns the removal delay as a duration.
func (t TimingConfig) RemovalDelay() time.Duration {
	return time.Duration(t.RemovalDelayMS) * time.Millisecond
}

// CompletionDelay returns the completion delay as a duration.
func (t TimingConfig) CompletionDelay() time.Duration {
	return time.Duration(t.CompletionDelayMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	switch {
	case c.Grid.Rows < 1 || c.Grid.Cols < 1:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Rows*c.Grid.Cols > MaxCells:
		return fmt.Errorf("%w: grid %dx%d exceeds %d tiles", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols, MaxCells)
	case c.Timing.RemovalDelayMS < 0 || c.Timing.CompletionDelayMS < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case c.Layout.CellWidth < 1 || c.Layout.CellHeight < 1:
		return fmt.Errorf("%w: cell size must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Layout.CellWidth, c.Layout.CellHeight)
	}
	return nil
}
