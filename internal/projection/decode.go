package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a projection file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf picks the format from a file name, defaulting to JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// Decode parses a projection document. Syntax errors are fatal; entries with
// a bad shape are recorded in Config.Problems and the rest are kept.
// An empty document is an empty configuration.
func Decode(name string, data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return newConfig(name, nil, nil), nil
	}

	var (
		entries  []Entry
		problems []*EntryError
		err      error
	)
	switch FormatOf(name) {
	case FormatYAML:
		entries, problems, err = decodeYAML(data)
	case FormatHCL:
		entries, problems, err = decodeHCL(name, data)
	default:
		entries, problems, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't parse %s: %v", ErrConfig, displayName(name), err)
	}
	return newConfig(name, entries, problems), nil
}

func displayName(name string) string {
	if name == "" {
		return "projections"
	}
	return name
}

// entryBuilder accumulates entries and per-entry problems in document order.
type entryBuilder struct {
	entries  []Entry
	problems []*EntryError
}

func (b *entryBuilder) add(e Entry, err error) {
	if err != nil {
		b.problems = append(b.problems, &EntryError{Main: e.Main, Err: err})
		return
	}
	b.entries = append(b.entries, e)
}

// decodeJSON walks the top-level object token by token so keys keep their
// declaration order.
func decodeJSON(data []byte) ([]Entry, []*EntryError, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("top level must be an object")
	}

	var b entryBuilder
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		main, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		b.add(jsonEntry(main, raw))
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return b.entries, b.problems, nil
}

func jsonEntry(main string, raw json.RawMessage) (Entry, error) {
	entry := Entry{Main: main}

	var fields struct {
		Alternate json.RawMessage `json:"alternate"`
		Template  json.RawMessage `json:"template"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return entry, fmt.Errorf("%w: value must be an object", ErrInvalidEntry)
	}

	alternates, err := jsonStrings(fields.Alternate, "alternate")
	if err != nil {
		return entry, err
	}
	if len(alternates) == 0 {
		return entry, ErrMissingAlternate
	}
	entry.Alternates = alternates

	if len(fields.Template) > 0 && string(fields.Template) != "null" {
		if err := json.Unmarshal(fields.Template, &entry.Template); err != nil {
			return entry, fmt.Errorf("%w: template must be a list of strings", ErrInvalidEntry)
		}
	}
	return entry, nil
}

// jsonStrings accepts a string or a list of strings.
func jsonStrings(raw json.RawMessage, field string) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		if one == "" {
			return nil, nil
		}
		return []string{one}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	return nil, fmt.Errorf("%w: %s must be a string or a list of strings", ErrInvalidEntry, field)
}

// decodeYAML reads the mapping through yaml.Node, which preserves key order.
func decodeYAML(data []byte) ([]Entry, []*EntryError, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("line %d: top level must be a mapping", doc.Line)
	}

	var b entryBuilder
	for i := 0; i+1 < len(doc.Content); i += 2 {
		b.add(yamlEntry(doc.Content[i].Value, doc.Content[i+1]))
	}
	return b.entries, b.problems, nil
}

func yamlEntry(main string, node *yaml.Node) (Entry, error) {
	entry := Entry{Main: main}
	if node.Kind != yaml.MappingNode {
		return entry, fmt.Errorf("%w: line %d: value must be a mapping", ErrInvalidEntry, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "alternate":
			alternates, err := yamlStrings(value, key)
			if err != nil {
				return entry, err
			}
			entry.Alternates = alternates
		case "template":
			if value.ShortTag() == "!!null" {
				continue
			}
			if value.Kind != yaml.SequenceNode {
				return entry, fmt.Errorf("%w: line %d: template must be a list of strings", ErrInvalidEntry, value.Line)
			}
			if err := value.Decode(&entry.Template); err != nil {
				return entry, fmt.Errorf("%w: line %d: template must be a list of strings", ErrInvalidEntry, value.Line)
			}
		}
	}

	if len(entry.Alternates) == 0 {
		return entry, ErrMissingAlternate
	}
	return entry, nil
}

func yamlStrings(node *yaml.Node, field string) ([]string, error) {
	switch {
	case node.ShortTag() == "!!null":
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str":
		if node.Value == "" {
			return nil, nil
		}
		return []string{node.Value}, nil
	case node.Kind == yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, fmt.Errorf("%w: line %d: %s must be a string or a list of strings", ErrInvalidEntry, item.Line, field)
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: line %d: %s must be a string or a list of strings", ErrInvalidEntry, node.Line, field)
	}
}

// hclDocument is the HCL form of a projection file:
//
//	projection "src/*.ts" {
//	  alternate = ["src/test/{}.test.ts"]
//	  template  = ["import { {basename} } from '../{basename}'"]
//	}
type hclDocument struct {
	Projections []hclProjection `hcl:"projection,block"`
}

type hclProjection struct {
	Main      string         `hcl:"main,label"`
	Alternate hcl.Expression `hcl:"alternate,optional"`
	Template  []string       `hcl:"template,optional"`
}

func decodeHCL(name string, data []byte) ([]Entry, []*EntryError, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, nil, diags
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, nil, diags
	}

	var b entryBuilder
	for _, p := range doc.Projections {
		b.add(hclEntry(p))
	}
	return b.entries, b.problems, nil
}

func hclEntry(p hclProjection) (Entry, error) {
	entry := Entry{Main: p.Main, Template: p.Template}

	val, diags := p.Alternate.Value(nil)
	if diags.HasErrors() {
		return entry, fmt.Errorf("%w: %s", ErrInvalidEntry, diags.Error())
	}
	if val.IsNull() {
		return entry, ErrMissingAlternate
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		if s := val.AsString(); s != "" {
			entry.Alternates = []string{s}
		}
	case ty.IsTupleType() || ty.IsListType():
		for _, item := range val.AsValueSlice() {
			if item.IsNull() || item.Type() != cty.String {
				return entry, fmt.Errorf("%w: alternate must be a string or a list of strings", ErrInvalidEntry)
			}
			entry.Alternates = append(entry.Alternates, item.AsString())
		}
	default:
		return entry, fmt.Errorf("%w: alternate must be a string or a list of strings", ErrInvalidEntry)
	}

	if len(entry.Alternates) == 0 {
		return entry, ErrMissingAlternate
	}
	return entry, nil
}
