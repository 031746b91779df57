package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/alternate/internal/projection"
)

// Init writes a starter .projections.json from a preset. Without Force an
// existing file is left untouched; with Force it is replaced atomically.
func (e *Engine) Init(ctx context.Context, req *InitRequest) (*InitResult, error) {
	preset, ok := projection.LookupPreset(req.Preset)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (available: %s)", ErrValidation, req.Preset, strings.Join(PresetNames(), ", "))
	}

	dir, err := e.initDir(req)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, projection.Filenames[0])

	data, err := projection.MarshalJSON(preset.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to render preset %s: %w", preset.Name, err)
	}

	result := &InitResult{Path: path, Preset: preset.Name, Entries: len(preset.Entries)}

	if req.Force {
		existed, err := e.fs.Exists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Overwritten = existed
		return result, nil
	}

	if err := e.fs.CreateExclusive(path, data, 0644); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return result, nil
}

// initDir picks the target directory: the requested one, else the
// repository root, else the working directory.
func (e *Engine) initDir(req *InitRequest) (string, error) {
	if req.Dir != "" {
		return resolveUserPath(req.Dir, req.CWD)
	}

	root, err := e.gitRepo.Discover(req.CWD)
	if err != nil {
		e.logger.Debug("no enclosing repository, using working directory", "cwd", req.CWD)
		return filepath.Clean(req.CWD), nil
	}
	return root, nil
}

// PresetNames returns the names of the built-in presets.
func PresetNames() []string {
	presets := projection.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
