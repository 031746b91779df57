// Package gitx locates the workspace a file belongs to.
//
// The workspace root bounds the upward search for projection files and is
// the default location for new ones.
package gitx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotRepository is returned when no enclosing git repository exists.
var ErrNotRepository = errors.New("not in a git repository")

// GitRepo provides an abstraction for git repository operations.
type GitRepo interface {
	// Discover finds the git repository root starting from cwd.
	Discover(cwd string) (root string, err error)
}

// RealGitRepo implements GitRepo on the local filesystem.
type RealGitRepo struct{}

// NewRealGitRepo creates a new RealGitRepo.
func NewRealGitRepo() *RealGitRepo {
	return &RealGitRepo{}
}

// Discover finds the git repository root by walking up from cwd looking for .git.
func (g *RealGitRepo) Discover(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotRepository
		}
		current = parent
	}
}

// FakeGitRepo implements GitRepo with predetermined values for testing.
type FakeGitRepo struct {
	root string
	err  error
}

// NewFakeGitRepo creates a new FakeGitRepo rooted at root.
func NewFakeGitRepo(root string) *FakeGitRepo {
	return &FakeGitRepo{root: root}
}

// SetError sets an error to be returned by all methods.
func (g *FakeGitRepo) SetError(err error) {
	g.err = err
}

// Discover returns the predetermined root.
func (g *FakeGitRepo) Discover(cwd string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.root, nil
}
