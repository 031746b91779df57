package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danieljhkim/alternate/internal/config"
	"github.com/danieljhkim/alternate/internal/engine"
	"github.com/danieljhkim/alternate/internal/fsops"
	"github.com/danieljhkim/alternate/internal/gitx"
	"github.com/danieljhkim/alternate/internal/logging"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(stderr io.Writer) (*engine.Engine, error) {
	settings, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := settings.Override(configPath, verbose); err != nil {
		return nil, err
	}

	logger := logging.New(stderr, settings.LogLevel)
	return engine.New(gitx.NewRealGitRepo(), fsops.NewRealFS(), *settings, logger), nil
}

// workingDir returns the current directory.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// FormatError formats an error for display on w.
func FormatError(w io.Writer, err error) string {
	if colorEnabled(w) {
		errorColor.EnableColor()
		return errorColor.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// outputJSON writes a value as JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// choosePath returns the path to print for a result.
func choosePath(abs, rel string) string {
	if relativeOutput {
		return rel
	}
	return abs
}
