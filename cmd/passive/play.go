package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/passive/internal/core"
	"github.com/vovakirdan/passive/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  W/A/S/D, arrows  - Move (hold)
  Space/P          - Pause / resume
  R                - Restart
  Ctrl+S           - Save a text screenshot to ~/.passive/screenshots
  Q/Ctrl+C         - Quit

Touching a gate pauses the game; press Space to carry on or R to start over.
Resizing the terminal starts a new round.

Examples:
  passive play
  passive play --difficulty easy
  passive play --seed 7 --log-file passive.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	//nolint:errcheck // Nothing to do if the log file fails to close on exit
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Info("starting", "cols", width, "rows", height, "fps", flagFPS, "difficulty", flagDifficulty)

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
