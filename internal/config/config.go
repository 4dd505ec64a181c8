package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete mosaic configuration
type Config struct {
	Shell    ShellConfig    `mapstructure:"shell"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
}

// ShellConfig controls the demo shell layout
type ShellConfig struct {
	// Regions are the region names, in left-to-right display order
	Regions []string `mapstructure:"regions"`
	// Theme is the color theme for the shell (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// Width is the render width in columns; 0 means use the terminal width
	Width int `mapstructure:"width"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Enabled turns file logging on or off
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the log directory; empty means log to stderr
	Dir string `mapstructure:"dir"`
}

// DispatchConfig controls the UI dispatcher
type DispatchConfig struct {
	// QueueSize is the pending-invocation queue size; 0 uses the built-in default
	QueueSize int `mapstructure:"queue_size"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Regions: []string{"Main", "Side", "Status"},
			Theme:   "default",
			Width:   0, // Use terminal width
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means stderr
		},
		Dispatch: DispatchConfig{
			QueueSize: 0, // Use the dispatcher's default
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Shell defaults
	viper.SetDefault("shell.regions", defaults.Shell.Regions)
	viper.SetDefault("shell.theme", defaults.Shell.Theme)
	viper.SetDefault("shell.width", defaults.Shell.Width)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	// Dispatch defaults
	viper.SetDefault("dispatch.queue_size", defaults.Dispatch.QueueSize)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mosaic")
	}
	// Fall back to ~/.config/mosaic
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mosaic"
	}
	return filepath.Join(home, ".config", "mosaic")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
