// Package fsops provides the filesystem gateway used by alternate.
//
// Resolution only needs two capabilities from its environment: asking whether
// a path exists and creating a file that must not already exist. Both go
// through the FS interface so the resolver can run against the real disk,
// an in-memory billy filesystem, or a test fake.
//
// Key features:
//   - Exclusive creation (fails with fs.ErrExist instead of overwriting)
//   - Atomic writes using temp file + rename
//   - Testable via the FS interface
package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// CreateExclusive creates path with data, creating parent directories as
	// needed. It fails with an error wrapping fs.ErrExist if path is present.
	CreateExclusive(path string, data []byte, perm os.FileMode) error

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Exists checks if a path exists. Symlinks are followed.
func (rfs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// CreateExclusive creates a new file, refusing to touch an existing one.
func (rfs *RealFS) CreateExclusive(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// AtomicWrite writes data to path atomically using temp file + rename.
func (rfs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// Create temp file in the same directory as target
	tmpFile, err := os.CreateTemp(dir, ".alternate-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Success - don't clean up temp file
	tmpFile = nil
	return nil
}

// ReadFile reads the entire contents of a file.
func (rfs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
