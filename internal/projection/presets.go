package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Preset is a starter projection file for a common project layout.
type Preset struct {
	Name        string
	Description string
	Entries     []Entry
}

var presets = []Preset{
	{
		Name:        "go",
		Description: "Go packages with _test.go files next to the source",
		Entries: []Entry{
			{Main: "*.go", Alternates: []string{"{}_test.go"}},
		},
	},
	{
		Name:        "typescript",
		Description: "TypeScript with __test__ directories",
		Entries: []Entry{
			{Main: "src/*.ts", Alternates: []string{"src/{dirname}/__test__/{basename}.test.ts"}},
			{Main: "src/*.tsx", Alternates: []string{"src/{dirname}/__test__/{basename}.test.tsx", "src/{dirname}/__test__/{basename}.test.ts"}},
		},
	},
	{
		Name:        "javascript",
		Description: "JavaScript with a mirrored src/test tree",
		Entries: []Entry{
			{Main: "src/*.js", Alternates: []string{"src/test/{}.test.js"}},
			{Main: "src/*.jsx", Alternates: []string{"src/test/{}.test.jsx", "src/test/{}.test.js"}},
		},
	},
	{
		Name:        "rails",
		Description: "Ruby on Rails with RSpec",
		Entries: []Entry{
			{Main: "app/*.rb", Alternates: []string{"spec/{}_spec.rb"}},
			{Main: "lib/*.rb", Alternates: []string{"spec/lib/{}_spec.rb"}},
		},
	},
	{
		Name:        "elixir",
		Description: "Mix projects with ExUnit",
		Entries: []Entry{
			{
				Main:       "lib/*.ex",
				Alternates: []string{"test/{}_test.exs"},
				Template:   []string{"defmodule {basename}Test do", "  use ExUnit.Case, async: true", "end"},
			},
		},
	},
	{
		Name:        "python",
		Description: "Python packages with pytest",
		Entries: []Entry{
			{Main: "src/*.py", Alternates: []string{"tests/{dirname}/test_{basename}.py"}},
		},
	},
}

// Presets returns the built-in presets sorted by name.
func Presets() []Preset {
	out := append([]Preset(nil), presets...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// MarshalJSON renders entries as a .projections.json document, preserving
// their order.
func MarshalJSON(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := json.Marshal(e.Main)
		if err != nil {
			return nil, err
		}

		value := struct {
			Alternate any      `json:"alternate"`
			Template  []string `json:"template,omitempty"`
		}{Template: e.Template}
		if len(e.Alternates) == 1 {
			value.Alternate = e.Alternates[0]
		} else {
			value.Alternate = e.Alternates
		}

		body, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", e.Main, err)
		}

		fmt.Fprintf(&buf, "  %s: %s", key, body)
		if i < len(entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
