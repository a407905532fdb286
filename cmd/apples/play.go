package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-apples/internal/core"
	"github.com/vovakirdan/tui-apples/internal/platform/tui"
	"github.com/vovakirdan/tui-apples/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a new board.

Controls:
  Mouse drag   - Select apples inside the rectangle
  N / click    - New game ([ New Game ] in the status line)
  H            - Rounds played this run
  Enter        - Continue after clearing the board
  Q/Ctrl+C     - Quit

Examples:
  apples play
  apples play --seed 7
  apples play --rows 6 --cols 10 --theme mono`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.Seed = flagSeed

	// Open round history
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("round history disabled", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open round history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Theme:   theme,
		Store:   store,
		Logger:  logger,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
