package projection

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/alternate/internal/fsops"
)

// Filenames lists the projection file names searched in every directory,
// in priority order.
var Filenames = []string{
	".projections.json",
	".projections.yaml",
	".projections.yml",
	".projections.hcl",
}

// Find locates the nearest projection file by walking up from startDir.
// The walk stops after ceiling when it is non-empty, or at the filesystem root.
func Find(fs fsops.FS, startDir, ceiling string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	if ceiling != "" {
		ceiling = filepath.Clean(ceiling)
	}

	for {
		for _, name := range Filenames {
			candidate := filepath.Join(dir, name)
			exists, err := fs.Exists(candidate)
			if err != nil {
				return "", fmt.Errorf("failed to check %s: %w", candidate, err)
			}
			if exists {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if dir == ceiling || parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
		}
		dir = parent
	}
}

// Load reads and decodes a projection file. The configuration root is the
// file's directory.
func Load(fs fsops.FS, path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	data, err := fs.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	return Decode(abs, data)
}
