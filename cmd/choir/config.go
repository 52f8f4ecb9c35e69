package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-choir/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the choir configuration",
	Long: `Prints the configuration a game would start with, after the config
file search and the --difficulty preset are applied.

With --defaults the built-in file is printed instead. Save it to
~/.choir/configs/choir.yaml and edit it to change timings, keys or sound.

Examples:
  choir config
  choir config --difficulty hard
  choir config --defaults > ~/.choir/configs/choir.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML("choir"))
		return err
	}

	cfg, err := loadChoirConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
