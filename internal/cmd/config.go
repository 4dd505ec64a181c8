package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mosaic/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View mosaic configuration",
	Long: `View mosaic configuration.

Without arguments, displays the effective configuration after merging
defaults, the config file, environment variables, and flags.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "shell:")
	fmt.Fprintf(out, "  regions: %s\n", strings.Join(cfg.Shell.Regions, ", "))
	fmt.Fprintf(out, "  theme: %s\n", cfg.Shell.Theme)
	fmt.Fprintf(out, "  width: %d\n", cfg.Shell.Width)
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %t\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)
	fmt.Fprintln(out, "dispatch:")
	fmt.Fprintf(out, "  queue_size: %d\n", cfg.Dispatch.QueueSize)
	return nil
}
