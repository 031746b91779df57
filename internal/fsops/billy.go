package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFS adapts a billy.Filesystem to FS. Paths are passed through
// unchanged, so an in-memory filesystem can hold absolute project paths.
type BillyFS struct {
	fs billy.Filesystem
}

// NewBillyFS creates a BillyFS backed by the given filesystem.
func NewBillyFS(fs billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fs}
}

// Exists checks if a path exists.
func (b *BillyFS) Exists(name string) (bool, error) {
	_, err := b.fs.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// CreateExclusive creates a new file, refusing to touch an existing one.
func (b *BillyFS) CreateExclusive(name string, data []byte, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path.Dir(name), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := b.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return f.Close()
}

// AtomicWrite writes data to a temp file next to name and renames it into place.
func (b *BillyFS) AtomicWrite(name string, data []byte, perm os.FileMode) error {
	dir := path.Dir(name)
	if err := b.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmp, err := util.TempFile(b.fs, dir, ".alternate-tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// memfs reports only the base name of its files.
	tmpPath := path.Join(dir, path.Base(tmp.Name()))

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = b.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = b.fs.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := b.fs.Rename(tmpPath, name); err != nil {
		_ = b.fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// ReadFile reads the entire contents of a file.
func (b *BillyFS) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(b.fs, name)
}
