package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is used for the config directory and environment prefix.
const AppName = "modal"

// Config holds all settings.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	UI      UIConfig      `toml:"ui" yaml:"ui"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file" yaml:"file"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// StatusLine draws the mode indicator.
	StatusLine bool `toml:"statusLine" yaml:"statusLine"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			StatusLine: true,
		},
	}
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Validate checks every setting against its domain.
func (c *Config) Validate() error {
	if !ValidLogLevel(c.Logging.Level) {
		return &ValidationError{
			Path:    "logging.level",
			Value:   c.Logging.Level,
			Message: "expected debug, info, warn or error",
		}
	}
	return nil
}

// ValidLogLevel reports whether s names a log level.
func ValidLogLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// DefaultPath returns the user config file path,
// $XDG_CONFIG_HOME/modal/config.toml or its platform equivalent.
// Returns an empty string if no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}
