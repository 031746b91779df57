// Package config manages alternate's runtime settings.
//
// Settings come from the environment and can be overridden by command-line
// flags:
//   - ALTERNATE_PROJECTIONS: use this projection file instead of searching
//   - ALTERNATE_LOG: log level (debug, info, warn, error)
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvProjections = "ALTERNATE_PROJECTIONS"
	EnvLog         = "ALTERNATE_LOG"
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	// Projections is an explicit projection file. Empty means search upward
	// from the file being resolved.
	Projections string

	// LogLevel is the minimum level written to stderr (default: warn)
	LogLevel slog.Level
}

// FromEnv reads settings from the process environment.
func FromEnv() (*Settings, error) {
	return Load(os.Getenv)
}

// Load reads settings through getenv.
func Load(getenv func(string) string) (*Settings, error) {
	s := &Settings{LogLevel: slog.LevelWarn}

	if p := getenv(EnvProjections); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", EnvProjections, err)
		}
		s.Projections = abs
	}

	if lvl := getenv(EnvLog); lvl != "" {
		level, err := ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLog, err)
		}
		s.LogLevel = level
	}

	return s, nil
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return level, nil
}

// Override applies command-line flags on top of the environment.
func (s *Settings) Override(projections string, verbose bool) error {
	if projections != "" {
		abs, err := filepath.Abs(projections)
		if err != nil {
			return fmt.Errorf("failed to resolve --config: %w", err)
		}
		s.Projections = abs
	}
	if verbose {
		s.LogLevel = slog.LevelDebug
	}
	return nil
}
