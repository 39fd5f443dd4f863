// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration. Everything here is a
// default that command-line flags override.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig controls the default report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
	Detail string `mapstructure:"detail"` // "full" or "simple"
	Color  string `mapstructure:"color"`  // "auto", "always" or "never"
}

var cfg *Config

// Init loads the configuration from ~/.config/wayinfo/wayinfo.toml if it
// exists, applying defaults and WAYINFO_* environment overrides.
func Init() error {
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.detail", "full")
	viper.SetDefault("output.color", "auto")

	viper.SetEnvPrefix("WAYINFO")
	// Nested keys use dots; the environment uses underscores
	// (output.format -> WAYINFO_OUTPUT_FORMAT).
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("wayinfo")
	viper.SetConfigType("toml")
	if dir, err := configDir(); err == nil {
		viper.AddConfigPath(dir)
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cfg = c
	return nil
}

// Get returns the loaded configuration, initializing defaults if Init was
// never called or failed.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{
			Output: OutputConfig{
				Format: "text",
				Detail: "full",
				Color:  "auto",
			},
		}
	}
	return cfg
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wayinfo"), nil
}
