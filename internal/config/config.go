// Package config loads hornlog configuration: an optional YAML file with
// environment-variable overrides on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all hornlog configuration.
type Config struct {
	// Prompt printed before each interactive read.
	Prompt string `yaml:"prompt"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Facts is an optional path to a facts file appended to the built-in
	// database at startup.
	Facts string `yaml:"facts"`
}

// Default returns the configuration used when no file and no overrides are
// present.
func Default() Config {
	return Config{
		Prompt:   "?- ",
		LogLevel: "info",
	}
}

// Load reads the config file at path (missing file is not an error; empty
// path skips the file entirely) and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, err
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HORNLOG_PROMPT"); v != "" {
		c.Prompt = v
	}
	if v := os.Getenv("HORNLOG_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("HORNLOG_FACTS"); v != "" {
		c.Facts = v
	}
}
