// Package engine provides the operations behind the alternate CLI.
//
// The engine package acts as the orchestration layer between CLI commands and
// the lower-level packages. It locates and loads the projection file that
// governs a path, builds a resolver from it, and shapes the outcome into
// request/result structs the CLI can print or encode.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Resolve/ResolveOrCreate: alternate lookup and creation
//   - Candidates/Patterns/Check: inspection of projection files
//   - Init: writes a starter projection file from a preset
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/alternate/internal/config"
	"github.com/danieljhkim/alternate/internal/fsops"
	"github.com/danieljhkim/alternate/internal/gitx"
	"github.com/danieljhkim/alternate/internal/pattern"
	"github.com/danieljhkim/alternate/internal/projection"
	"github.com/danieljhkim/alternate/internal/resolver"
)

// Engine orchestrates all alternate operations.
// It is the main API surface called by the CLI.
type Engine struct {
	gitRepo  gitx.GitRepo
	fs       fsops.FS
	settings config.Settings
	logger   *slog.Logger
}

// New creates a new Engine with the given dependencies.
func New(gitRepo gitx.GitRepo, fs fsops.FS, settings config.Settings, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		gitRepo:  gitRepo,
		fs:       fs,
		settings: settings,
		logger:   logger,
	}
}

// projectionSet is a loaded projection file and the patterns compiled from it.
type projectionSet struct {
	config   *projection.Config
	patterns []*pattern.Pattern
	problems []*projection.EntryError
}

func (s *projectionSet) resolver(fs fsops.FS, logger *slog.Logger) *resolver.Resolver {
	return resolver.New(s.config.Root, s.patterns, fs, logger)
}

// locateProjections returns the projection file governing startDir. An
// explicit file from the settings wins; otherwise the search walks up to
// the repository root, or to the filesystem root outside a repository.
func (e *Engine) locateProjections(startDir string) (string, error) {
	if e.settings.Projections != "" {
		return e.settings.Projections, nil
	}

	ceiling, err := e.gitRepo.Discover(startDir)
	if err != nil {
		e.logger.Debug("no enclosing repository, searching to the filesystem root", "dir", startDir, "error", err)
		ceiling = ""
	}

	return projection.Find(e.fs, startDir, ceiling)
}

// loadProjections loads and compiles the projection file governing startDir.
// Invalid entries are logged and skipped; the valid ones stay usable.
func (e *Engine) loadProjections(startDir string) (*projectionSet, error) {
	path, err := e.locateProjections(startDir)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("using projection file", "path", path)

	cfg, err := projection.Load(e.fs, path)
	if err != nil {
		return nil, err
	}

	patterns, err := projection.Parse(cfg)
	set := &projectionSet{config: cfg, patterns: patterns}

	var perrs *projection.Errors
	switch {
	case errors.As(err, &perrs):
		set.problems = perrs.Errors
		for _, p := range perrs.Errors {
			e.logger.Warn("skipping invalid projection", "config", cfg.Path, "main", p.Main, "error", p.Err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to compile %s: %w", cfg.Path, err)
	}

	return set, nil
}
