package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/alternate/internal/config"
	"github.com/danieljhkim/alternate/internal/engine"
	"github.com/danieljhkim/alternate/internal/fsops"
	"github.com/danieljhkim/alternate/internal/gitx"
	"github.com/danieljhkim/alternate/internal/logging"
)

// fixture is a throwaway monorepo on the real filesystem.
type fixture struct {
	t    *testing.T
	root string
}

// newFixture creates an empty repository in a temp directory.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	return &fixture{t: t, root: root}
}

// path converts a slash-separated repo-relative path to an absolute one.
func (f *fixture) path(rel string) string {
	return filepath.Join(f.root, filepath.FromSlash(rel))
}

// write creates a file with content, including parent directories.
func (f *fixture) write(rel, content string) {
	f.t.Helper()
	p := f.path(rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(f.t, os.WriteFile(p, []byte(content), 0644))
}

// touch creates empty files.
func (f *fixture) touch(rels ...string) {
	f.t.Helper()
	for _, rel := range rels {
		f.write(rel, "")
	}
}

// read returns a file's content.
func (f *fixture) read(rel string) string {
	f.t.Helper()
	data, err := os.ReadFile(f.path(rel))
	require.NoError(f.t, err, "read %s", rel)
	return string(data)
}

// exists reports whether a repo-relative path exists.
func (f *fixture) exists(rel string) bool {
	_, err := os.Stat(f.path(rel))
	return err == nil
}

// engine builds an engine on the real filesystem with the given settings.
func (f *fixture) engine(settings config.Settings) *engine.Engine {
	return engine.New(gitx.NewRealGitRepo(), fsops.NewRealFS(), settings, logging.Discard())
}
