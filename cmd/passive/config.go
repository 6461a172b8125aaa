package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/passive/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the game would run with, after the config
file search and the difficulty preset, as YAML.

The output is a valid config file. Save it to ~/.passive/configs/passive.yaml
and edit it to tune the game.

Examples:
  passive config
  passive config --difficulty hard
  passive config --defaults > ~/.passive/configs/passive.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults and ignore config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
