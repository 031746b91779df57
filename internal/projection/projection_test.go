package projection

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/alternate/internal/fsops"
	"github.com/danieljhkim/alternate/internal/pattern"
)

type pair struct{ main, alternate string }

func pairs(patterns []*pattern.Pattern) []pair {
	out := make([]pair, len(patterns))
	for i, p := range patterns {
		out[i] = pair{p.Main, p.Alternate}
	}
	return out
}

func TestMainPattern(t *testing.T) {
	tests := []struct {
		glob    string
		want    string
		wantErr bool
	}{
		{glob: "src/*.ts", want: "src/{dirname}/{basename}.ts"},
		{glob: "src/**/*.ts", want: "src/{dirname}/{basename}.ts"},
		{glob: "app/*.rb", want: "app/{dirname}/{basename}.rb"},
		{glob: "*.go", want: "{dirname}/{basename}.go"},
		{glob: "lib/*_helper.ex", want: "lib/{dirname}/{basename}_helper.ex"},
		{glob: `src\*.ts`, want: "src/{dirname}/{basename}.ts"},
		{glob: "src/index.ts", wantErr: true},
		{glob: "src/*/*.ts", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			got, err := MainPattern(tt.glob)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGlob)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlternatePattern(t *testing.T) {
	tests := []struct {
		glob    string
		want    string
		wantErr bool
	}{
		{glob: "src/test/{}.test.ts", want: "src/test/{dirname}/{basename}.test.ts"},
		{glob: "test/*_spec.rb", want: "test/{basename}_spec.rb"},
		{glob: "test/{dirname}/{basename}_spec.rb", want: "test/{dirname}/{basename}_spec.rb"},
		{glob: "spec/**/*_spec.rb", want: "spec/{dirname}/{basename}_spec.rb"},
		{glob: "test/spec.rb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			got, err := AlternatePattern(tt.glob)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGlob)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Single(t *testing.T) {
	cfg, err := Decode(".projections.json", []byte(`{
		"src/*.ts": { "alternate": "src/test/{}.test.ts" },
		"app/*.rb": { "alternate": "test/{}_spec.rb" }
	}`))
	require.NoError(t, err)

	patterns, err := Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{"src/{dirname}/{basename}.ts", "src/test/{dirname}/{basename}.test.ts"},
		{"app/{dirname}/{basename}.rb", "test/{dirname}/{basename}_spec.rb"},
	}, pairs(patterns))
}

func TestParse_DoubleStar(t *testing.T) {
	cfg, err := Decode(".projections.json", []byte(`{
		"src/**/*.ts": { "alternate": "src/{dirname}/__test__/{basename}.test.ts" }
	}`))
	require.NoError(t, err)

	patterns, err := Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{"src/{dirname}/{basename}.ts", "src/{dirname}/__test__/{basename}.test.ts"},
	}, pairs(patterns))
}

func TestParse_MultipleAlternates(t *testing.T) {
	cfg, err := Decode(".projections.json", []byte(`{
		"src/*.ts": {
			"alternate": ["src/test/{}.test.ts", "src/{dirname}/__test__/{basename}.test.ts"]
		}
	}`))
	require.NoError(t, err)

	patterns, err := Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{"src/{dirname}/{basename}.ts", "src/test/{dirname}/{basename}.test.ts"},
		{"src/{dirname}/{basename}.ts", "src/{dirname}/__test__/{basename}.test.ts"},
	}, pairs(patterns))
}

func TestParse_PreservesDeclarationOrder(t *testing.T) {
	// Keys deliberately out of lexical order.
	cfg, err := Decode(".projections.json", []byte(`{
		"z/*.go": { "alternate": "z/{}_test.go" },
		"a/*.go": { "alternate": "a/{}_test.go" },
		"m/*.go": { "alternate": "m/{}_test.go" }
	}`))
	require.NoError(t, err)

	mains := make([]string, len(cfg.Entries))
	for i, e := range cfg.Entries {
		mains[i] = e.Main
	}
	assert.Equal(t, []string{"z/*.go", "a/*.go", "m/*.go"}, mains)
}

func TestParse_PartialSuccess(t *testing.T) {
	cfg, err := Decode(".projections.json", []byte(`{
		"src/*.ts": { "alternate": "src/test/{}.test.ts" },
		"lib/*.js": {},
		"app/*.rb": { "alternate": 42 },
		"index.ts": { "alternate": "test/{}.ts" },
		"pkg/*.go": { "alternate": "pkg/nothing.go" },
		"web/*.vue": "web/{}.spec.js",
		"cmd/*.go": { "alternate": ["cmd/{}_test.go"] }
	}`))
	require.NoError(t, err)

	patterns, err := Parse(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, ErrMissingAlternate)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.ErrorIs(t, err, ErrInvalidGlob)

	var perr *Errors
	require.True(t, errors.As(err, &perr))
	mains := make([]string, len(perr.Errors))
	for i, e := range perr.Errors {
		mains[i] = e.Main
	}
	assert.ElementsMatch(t, []string{"lib/*.js", "app/*.rb", "index.ts", "pkg/*.go", "web/*.vue"}, mains)

	assert.Equal(t, []pair{
		{"src/{dirname}/{basename}.ts", "src/test/{dirname}/{basename}.test.ts"},
		{"cmd/{dirname}/{basename}.go", "cmd/{dirname}/{basename}_test.go"},
	}, pairs(patterns))
}

func TestParse_Template(t *testing.T) {
	cfg, err := Decode(".projections.json", []byte(`{
		"lib/*.ex": {
			"alternate": ["test/{}_test.exs", "test/legacy/{}_test.exs"],
			"template": ["defmodule {basename}Test do", "end"]
		}
	}`))
	require.NoError(t, err)

	patterns, err := Parse(cfg)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	for _, p := range patterns {
		assert.Equal(t, []string{"defmodule {basename}Test do", "end"}, p.Template)
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, name := range Filenames {
		t.Run(name, func(t *testing.T) {
			cfg, err := Decode(name, []byte("  \n"))
			require.NoError(t, err)
			assert.Empty(t, cfg.Entries)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := map[string]string{
		".projections.json": `{"src/*.ts": `,
		".projections.yaml": "src/*.ts: [unclosed",
		".projections.hcl":  `projection "src/*.ts" {`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(name, []byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}

	t.Run("json array", func(t *testing.T) {
		_, err := Decode(".projections.json", []byte(`["src/*.ts"]`))
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestDecode_YAML(t *testing.T) {
	cfg, err := Decode(".projections.yaml", []byte(`
src/*.ts:
  alternate: src/test/{}.test.ts
app/**/*.rb:
  alternate:
    - test/{dirname}/{basename}_spec.rb
    - spec/{dirname}/{basename}_spec.rb
  template:
    - "require 'spec_helper'"
lib/*.js:
  alternate: 3
`))
	require.NoError(t, err)

	require.Len(t, cfg.Entries, 2)
	assert.Equal(t, Entry{Main: "src/*.ts", Alternates: []string{"src/test/{}.test.ts"}}, cfg.Entries[0])
	assert.Equal(t, Entry{
		Main:       "app/**/*.rb",
		Alternates: []string{"test/{dirname}/{basename}_spec.rb", "spec/{dirname}/{basename}_spec.rb"},
		Template:   []string{"require 'spec_helper'"},
	}, cfg.Entries[1])

	require.Len(t, cfg.Problems, 1)
	assert.Equal(t, "lib/*.js", cfg.Problems[0].Main)
	assert.ErrorIs(t, cfg.Problems[0], ErrInvalidEntry)
}

func TestDecode_JSONAsYAML(t *testing.T) {
	// .yml files may still be written in JSON syntax.
	cfg, err := Decode(".projections.yml", []byte(`{"src/*.ts": {"alternate": ["a/{}.ts", "b/{}.ts"]}}`))
	require.NoError(t, err)
	require.Len(t, cfg.Entries, 1)
	assert.Equal(t, []string{"a/{}.ts", "b/{}.ts"}, cfg.Entries[0].Alternates)
}

func TestDecode_HCL(t *testing.T) {
	cfg, err := Decode(".projections.hcl", []byte(`
projection "src/*.ts" {
  alternate = "src/test/{}.test.ts"
}

projection "lib/*.ex" {
  alternate = ["test/{}_test.exs", "test/legacy/{}_test.exs"]
  template  = ["defmodule {basename}Test do", "end"]
}

projection "app/*.rb" {
}

projection "web/*.vue" {
  alternate = 12
}
`))
	require.NoError(t, err)

	require.Len(t, cfg.Entries, 2)
	assert.Equal(t, Entry{Main: "src/*.ts", Alternates: []string{"src/test/{}.test.ts"}}, cfg.Entries[0])
	assert.Equal(t, Entry{
		Main:       "lib/*.ex",
		Alternates: []string{"test/{}_test.exs", "test/legacy/{}_test.exs"},
		Template:   []string{"defmodule {basename}Test do", "end"},
	}, cfg.Entries[1])

	require.Len(t, cfg.Problems, 2)
	assert.ErrorIs(t, cfg.Problems[0], ErrMissingAlternate)
	assert.ErrorIs(t, cfg.Problems[1], ErrInvalidEntry)
}

func TestFind(t *testing.T) {
	fs := fsops.NewBillyFS(memfs.New())
	require.NoError(t, fs.CreateExclusive("/repo/.projections.json", []byte("{}"), 0644))
	require.NoError(t, fs.CreateExclusive("/repo/web/.projections.yaml", []byte(""), 0644))
	require.NoError(t, fs.CreateExclusive("/repo/web/.projections.hcl", []byte(""), 0644))

	t.Run("nearest file wins", func(t *testing.T) {
		got, err := Find(fs, "/repo/web/src/components", "")
		require.NoError(t, err)
		assert.Equal(t, "/repo/web/.projections.yaml", got)
	})

	t.Run("walks up to the parent", func(t *testing.T) {
		got, err := Find(fs, "/repo/api/src", "")
		require.NoError(t, err)
		assert.Equal(t, "/repo/.projections.json", got)
	})

	t.Run("stops at the ceiling", func(t *testing.T) {
		_, err := Find(fs, "/repo/api/src", "/repo/api")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := Find(fs, "/elsewhere", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLoad(t *testing.T) {
	fs := fsops.NewBillyFS(memfs.New())
	path := filepath.Join("/repo", ".projections.json")
	require.NoError(t, fs.CreateExclusive(path, []byte(`{"src/*.ts": {"alternate": "src/test/{}.test.ts"}}`), 0644))

	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "/repo", cfg.Root)
	require.Len(t, cfg.Entries, 1)

	_, err = Load(fs, "/repo/missing.json")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	names := make([]string, 0)
	for _, p := range Presets() {
		names = append(names, p.Name)

		data, err := MarshalJSON(p.Entries)
		require.NoError(t, err, p.Name)

		cfg, err := Decode(".projections.json", data)
		require.NoError(t, err, p.Name)
		assert.Equal(t, p.Entries, cfg.Entries, "%s preset must round-trip through JSON", p.Name)

		_, err = Parse(cfg)
		assert.NoError(t, err, p.Name)
	}
	assert.IsIncreasing(t, names)

	_, ok := LookupPreset("rails")
	assert.True(t, ok)
	_, ok = LookupPreset("cobol")
	assert.False(t, ok)
}
