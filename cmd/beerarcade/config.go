package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beer-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show <game>",
	Short: "Print the effective configuration of a game as YAML",
	Long: `Print the configuration a game would start with, after the search
order and the --difficulty preset are applied.

Examples:
  beerarcade config show runner
  beerarcade config show pour --difficulty hard > ~/.beerarcade/configs/pour.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <game> <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadGameConfig(args[0], flagConfig, flagDifficulty)
	if err != nil && cfg == nil {
		return err
	}

	data, mErr := config.Marshal(cfg)
	if mErr != nil {
		return mErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", src)
	cmd.OutOrStdout().Write(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	_, _, err := loadGameConfig(args[0], args[1], "")
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return fmt.Errorf("%s is invalid: %w", args[1], err)
	case err != nil:
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[1])
	return nil
}
