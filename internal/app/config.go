package app

import (
	"errors"
	"fmt"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// InstallDir is the directory the generator binary lives in. Every path
	// the generator reads is derived from it; it is the program's only
	// variable input.
	InstallDir string

	// LogFormat and LogLevel shape the diagnostic stream. The shipped
	// binary always passes the fixed defaults; tests construct Apps with
	// debug logging to capture the pipeline.
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and applies the logging defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InstallDir == "" {
		return nil, errors.New("InstallDir is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
