// Package config loads report settings from a YAML file via viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings for one report run. Every field has a flag
// counterpart on the comment command; flags override file values.
type Config struct {
	InputPath  string `mapstructure:"input_path"`  // lcov tracefile to read
	OutputPath string `mapstructure:"output_path"` // comment file to write, empty = stdout
	Title      string `mapstructure:"title"`
	Marker     string `mapstructure:"marker"`
	LogLevel   string `mapstructure:"log_level"`
}

// Default returns the built-in settings used when no config file or
// flag says otherwise.
func Default() *Config {
	return &Config{
		InputPath: "lcov.info",
		Title:     "Coverage Report",
		LogLevel:  "info",
	}
}

// Load reads a configuration file from a "configs" directory into a
// struct. The configName parameter is the base name of the file without
// the extension (e.g. "report"). Several relative locations are tried
// so the lookup also works from inside package tests.
func Load(configName string, result interface{}) error {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(result); err != nil {
		return fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return nil
}

// LoadReport loads the "report" config on top of the defaults. A
// missing config file is not an error; the defaults are returned as-is.
func LoadReport() (*Config, error) {
	cfg := Default()
	err := Load("report", cfg)
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
