// apples is a terminal "sum to ten" puzzle: drag a rectangle over apples
// whose numbers add up to exactly 10 to clear them.
//
// Usage:
//
//	apples                   - Play (same as apples play)
//	apples play              - Play a board
//	apples config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible grids
//	--rows, --cols      - Override the grid size
//	--theme <name>      - default or mono
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagRows     int
	flagCols     int
	flagTheme    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apples",
	Short: "Apples - clear the board ten at a time",
	Long: `Apples is a terminal puzzle played with the mouse.

Drag a rectangle over apples whose numbers add up to exactly 10.
Every apple cleared scores one point; clear the whole board to finish.

Available commands:
  play     - Play a board (default)
  config   - Print the effective configuration

Examples:
  apples
  apples --seed 42
  apples play --rows 5 --cols 8
  apples --log-file apples.log --log-level debug
  apples config --config ./my-apples.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Grid rows (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Grid columns (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
