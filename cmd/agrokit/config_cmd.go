package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the agrokit config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to --config",
	Long: `Writes the configuration currently in effect (defaults, then the
existing file if any, then environment overrides) to the --config path.
An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "%s already exists (use --force to overwrite)\n", configPath)
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Info("Config written", zap.String("path", configPath))
	fmt.Fprintf(out, "wrote %s\n", configPath)
	return nil
}
