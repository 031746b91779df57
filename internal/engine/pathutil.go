package engine

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveUserPath resolves a user-provided path (absolute, relative, or
// containing "..") against cwd into a clean absolute path.
func resolveUserPath(userPath, cwd string) (string, error) {
	if userPath == "" {
		return "", fmt.Errorf("%w: path is empty", ErrValidation)
	}

	var absPath string
	if filepath.IsAbs(userPath) {
		absPath = userPath
	} else {
		absPath = filepath.Join(cwd, userPath)
	}
	return filepath.Clean(absPath), nil
}

// displayPath renders absPath relative to cwd when it lives below cwd, and
// absolute otherwise.
func displayPath(absPath, cwd string) string {
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return absPath
	}
	return rel
}
