package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tsPattern = MustCompile("src/{dirname}/{basename}.ts", "src/{dirname}/__test__/{basename}.test.ts")
	rbPattern = MustCompile("app/{dirname}/{basename}.rb", "test/{dirname}/{basename}_spec.rb")
)

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		main      string
		alternate string
	}{
		{name: "missing basename in main", main: "src/{dirname}/index.ts", alternate: "test/{basename}.ts"},
		{name: "missing basename in alternate", main: "src/{basename}.ts", alternate: "test/spec.ts"},
		{name: "two basenames", main: "src/{basename}/{basename}.ts", alternate: "test/{basename}.ts"},
		{name: "dirname without slash", main: "src/{dirname}{basename}.ts", alternate: "test/{basename}.ts"},
		{name: "dirname at end", main: "src/{basename}/{dirname}", alternate: "test/{basename}.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.main, tt.alternate)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestAlternatePath(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		path    string
		want    string
		dir     Direction
	}{
		{
			name:    "implementation from a test",
			pattern: tsPattern,
			path:    "src/components/__test__/Foo.test.ts",
			want:    "src/components/Foo.ts",
			dir:     ToMain,
		},
		{
			name:    "test from an implementation",
			pattern: tsPattern,
			path:    "src/foo/bar.ts",
			want:    "src/foo/__test__/bar.test.ts",
			dir:     ToAlternate,
		},
		{
			name:    "leading dot segment",
			pattern: tsPattern,
			path:    "./src/foo/bar.ts",
			want:    "src/foo/__test__/bar.test.ts",
			dir:     ToAlternate,
		},
		{
			name:    "short path has no dangling slash",
			pattern: rbPattern,
			path:    "app/foo.rb",
			want:    "test/foo_spec.rb",
			dir:     ToAlternate,
		},
		{
			name:    "dirname omitted at root",
			pattern: tsPattern,
			path:    "src/bar.ts",
			want:    "src/__test__/bar.test.ts",
			dir:     ToAlternate,
		},
		{
			name:    "nested controllers",
			pattern: rbPattern,
			path:    "app/controllers/foo_controller.rb",
			want:    "test/controllers/foo_controller_spec.rb",
			dir:     ToAlternate,
		},
		{
			name:    "backslashes are normalized",
			pattern: rbPattern,
			path:    `app\models\user.rb`,
			want:    "test/models/user_spec.rb",
			dir:     ToAlternate,
		},
		{
			name:    "multiple dirnames",
			pattern: MustCompile("apps/{dirname}/lib/{dirname}/{basename}.ex", "apps/{dirname}/test/{dirname}/{basename}_test.exs"),
			path:    "apps/my_app/lib/accounts/user.ex",
			want:    "apps/my_app/test/accounts/user_test.exs",
			dir:     ToAlternate,
		},
		{
			name:    "named placeholder",
			pattern: MustCompile("pkg/{module}/{dirname}/{basename}.go", "pkg/{module}/testdata/{dirname}/{basename}.golden"),
			path:    "pkg/parser/ast/node.go",
			want:    "pkg/parser/testdata/ast/node.golden",
			dir:     ToAlternate,
		},
		{
			name:    "basename-only alternate drops directories",
			pattern: MustCompile("src/{dirname}/{basename}.js", "test/{basename}.test.js"),
			path:    "src/a/b/widget.js",
			want:    "test/widget.test.js",
			dir:     ToAlternate,
		},
		{
			name:    "regexp metacharacters are literal",
			pattern: MustCompile("lib/{dirname}/{basename}.c++", "spec/{dirname}/{basename}(test).c++"),
			path:    "lib/x/y.c++",
			want:    "spec/x/y(test).c++",
			dir:     ToAlternate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := tt.pattern.AlternatePath(tt.path)
			require.True(t, ok, "expected %q to match %s", tt.path, tt.pattern)
			assert.Equal(t, tt.want, m.Path)
			assert.Equal(t, tt.dir, m.Direction)
		})
	}
}

func TestAlternatePath_NoMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		path    string
	}{
		{name: "wrong extension", pattern: tsPattern, path: "src/foo.rb"},
		{name: "wrong root", pattern: tsPattern, path: "lib/foo.ts"},
		{name: "substring of a longer path", pattern: rbPattern, path: "vendor/app/foo.rb"},
		{name: "dot in pattern is literal", pattern: tsPattern, path: "src/fooXts"},
		{name: "empty basename", pattern: rbPattern, path: "app/.rb"},
		{name: "named placeholder missing on target", pattern: MustCompile("src/{basename}.go", "{module}/{basename}_test.go"), path: "src/x.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.pattern.AlternatePath(tt.path)
			assert.False(t, ok)
		})
	}
}

func TestAlternatePath_RoundTrip(t *testing.T) {
	patterns := []*Pattern{
		tsPattern,
		rbPattern,
		MustCompile("apps/{dirname}/lib/{dirname}/{basename}.ex", "apps/{dirname}/test/{dirname}/{basename}_test.exs"),
		MustCompile("{dirname}/{basename}.go", "{dirname}/{basename}_test.go"),
	}
	paths := []string{
		"src/a.ts",
		"src/deep/nested/dir/a.ts",
		"app/models/user.rb",
		"app/user.rb",
		"apps/core/lib/repo.ex",
		"apps/core/lib/a/b/repo.ex",
		"internal/pattern/pattern.go",
		"main.go",
	}

	for _, p := range patterns {
		for _, path := range paths {
			forward, ok := p.AlternatePath(path)
			if !ok || forward.Direction != ToAlternate {
				continue
			}

			back, ok := p.AlternatePath(forward.Path)
			require.True(t, ok)
			assert.Equal(t, ToMain, back.Direction)
			assert.Equal(t, path, back.Path, "%s: round trip through %s", p, forward.Path)
		}
	}
}

func TestAlternatePath_AlternateSideWins(t *testing.T) {
	// Both sides match "{dirname}/x.go"; the alternate side is tried first.
	p := MustCompile("{dirname}/{basename}.go", "gen/{dirname}/{basename}.go")

	m, ok := p.AlternatePath("gen/pkg/x.go")
	require.True(t, ok)
	assert.Equal(t, ToMain, m.Direction)
	assert.Equal(t, "pkg/x.go", m.Path)
}

func TestTemplateFor(t *testing.T) {
	p := MustCompile("src/{dirname}/{basename}.ts", "src/{dirname}/__test__/{basename}.test.ts").
		WithTemplate([]string{"import { {basename} } from '../{basename}';", "// {dirname}/{basename}", "describe('{dirname}', () => {});"})

	forward, ok := p.AlternatePath("src/ui/Button.ts")
	require.True(t, ok)
	assert.Equal(t, []string{
		"import { Button } from '../Button';",
		"// ui/Button",
		"describe('ui', () => {});",
	}, p.TemplateFor(forward))

	back, ok := p.AlternatePath("src/ui/__test__/Button.test.ts")
	require.True(t, ok)
	assert.Nil(t, p.TemplateFor(back), "templates only seed alternate files")

	assert.Nil(t, tsPattern.TemplateFor(forward))
}

func TestTemplateFor_MultipleDirnames(t *testing.T) {
	p := MustCompile("apps/{dirname}/lib/{dirname}/{basename}.ex", "apps/{dirname}/test/{dirname}/{basename}_test.exs").
		WithTemplate([]string{"# {dirname}/{basename}", "fn -> {} end"})

	m, ok := p.AlternatePath("apps/billing/lib/invoices/pdf.ex")
	require.True(t, ok)
	assert.Equal(t, "apps/billing/test/invoices/pdf_test.exs", m.Path)
	assert.Equal(t, []string{"# billing/invoices/pdf", "fn -> {} end"}, p.TemplateFor(m))

	// An absent optional directory leaves no stray separator.
	m, ok = p.AlternatePath("apps/billing/lib/pdf.ex")
	require.True(t, ok)
	assert.Equal(t, []string{"# billing/pdf", "fn -> {} end"}, p.TemplateFor(m))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a/b/c.go", Normalize(`a\b\c.go`))
	assert.Equal(t, "a/b/c.go", Normalize("a/b/c.go"))
}
