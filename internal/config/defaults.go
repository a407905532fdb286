package config

import (
	_ "embed"
)

//go:embed defaults/apples.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 10,
			Cols: 20,
		},
		Timing: TimingConfig{
			RemovalDelayMS:    500,
			CompletionDelayMS: 600,
		},
		Layout: LayoutConfig{
			CellWidth:  3,
			CellHeight: 2,
		},
	}
}
