package config

import (
	"os"
	"strings"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "MODAL_LOG_LEVEL"
	EnvLogFile  = "MODAL_LOG_FILE"
)

// LookupFunc retrieves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg from the environment. A nil lookup uses
// os.LookupEnv. Empty values are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.Logging.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Logging.File = v
	}
}
