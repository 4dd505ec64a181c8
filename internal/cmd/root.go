package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mosaic/internal/config"
	"mosaic/internal/logging"
	"mosaic/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Region-based view composition for terminal shells",
	Long: `Mosaic bridges view-models to a region-based terminal composition
shell: views are resolved per view-model, activated into named regions,
and removed automatically when their view-model closes.

Running mosaic without a subcommand starts the interactive demo shell.`,
	RunE: runShell,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/mosaic/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("theme", "", "color theme (default, monokai, dracula, nord)")
	_ = viper.BindPFlag("shell.theme", rootCmd.Flags().Lookup("theme"))

	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/mosaic")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MOSAIC")
	// Replace dots with underscores for nested keys in env vars
	// e.g., MOSAIC_SHELL_THEME for shell.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.Dir, logging.ParseLevel(cfg.Logging.Level))
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	app, err := tui.New(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run()
}
