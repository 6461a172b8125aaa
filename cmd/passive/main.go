// passive is a terminal survival game: steer the square away from chasing
// diamonds and spinning triangular gates for as long as you can.
//
// Usage:
//
//	passive play             - Play in the terminal
//	passive sim              - Run the simulation headless and print a summary
//	passive config           - Print the resolved configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/passive/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "passive",
	Short: "Passive - dodge enemies and spinning gates in your terminal",
	Long: `Passive is a small survival game. Waves of enemies spawn in the
corners and chase you, and rotating triangular gates appear in the upper
right of the field. Touching a gate edge stops the game.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation headless
  config   - Print the resolved configuration

Examples:
  passive play
  passive play --difficulty hard --seed 42
  passive sim --ticks 3600 --keys up,left
  passive config --config ./my-passive.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.PassiveConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PassiveConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PassiveConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.PassiveConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}
