// Package pattern implements bidirectional path patterns.
//
// A Pattern pairs a "main" path shape with an "alternate" path shape. Both
// sides are written with placeholders:
//   - {dirname}/ matches zero or more leading directories (optional)
//   - {basename} matches one non-empty, slash-free segment (required, exactly once)
//   - {name} matches one non-empty, slash-free segment and is substituted by name
//
// A path matching one side is rewritten into the other side by substituting
// the captured fragments. Patterns are compiled once and are safe for
// concurrent use.
package pattern

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidPattern indicates a pattern that cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// Direction records which side of a Pattern produced a mapping.
type Direction int

const (
	// ToMain means the input matched the alternate side and the result is a main path.
	ToMain Direction = iota
	// ToAlternate means the input matched the main side and the result is an alternate path.
	ToAlternate
)

func (d Direction) String() string {
	if d == ToAlternate {
		return "main->alternate"
	}
	return "alternate->main"
}

// Captures holds the fragments extracted from a matched path.
type Captures struct {
	// Dirnames holds one entry per {dirname} placeholder, in pattern order.
	// An entry is empty when the optional directory was absent.
	Dirnames []string
	Basename string
	Named    map[string]string
}

// Dirname returns every captured directory joined in pattern order, or ""
// when none was captured.
func (c Captures) Dirname() string {
	return path.Join(c.Dirnames...)
}

// Mapping is the result of rewriting a path through a Pattern.
type Mapping struct {
	Path      string
	Direction Direction
	Captures  Captures
}

// Pattern is an immutable, compiled main/alternate pair.
type Pattern struct {
	Main      string
	Alternate string
	// Template holds seed lines for newly created alternate files.
	Template []string

	main      *matcher
	alternate *matcher
}

// Compile validates and compiles a main/alternate pair.
func Compile(main, alternate string) (*Pattern, error) {
	m, err := compile(main)
	if err != nil {
		return nil, err
	}
	a, err := compile(alternate)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		Main:      m.source,
		Alternate: a.source,
		main:      m,
		alternate: a,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(main, alternate string) *Pattern {
	p, err := Compile(main, alternate)
	if err != nil {
		panic(err)
	}
	return p
}

// WithTemplate returns a copy of p carrying the given template lines.
func (p *Pattern) WithTemplate(lines []string) *Pattern {
	cp := *p
	cp.Template = append([]string(nil), lines...)
	return &cp
}

// AlternatePath rewrites a relative, slash-separated path through the pattern.
// The alternate side is tried first; the main side only when it does not match.
func (p *Pattern) AlternatePath(relPath string) (Mapping, bool) {
	relPath = path.Clean(Normalize(relPath))

	if m, ok := rewrite(p.alternate, p.main, relPath); ok {
		m.Direction = ToMain
		return m, true
	}
	if m, ok := rewrite(p.main, p.alternate, relPath); ok {
		m.Direction = ToAlternate
		return m, true
	}
	return Mapping{}, false
}

// TemplateFor returns the seed content for a file produced by a mapping.
// Templates only apply when the alternate side is being created. Only
// {basename}, {dirname} and named placeholders expand; any other brace
// text, such as "{}" in code, is kept as written.
func (p *Pattern) TemplateFor(m Mapping) []string {
	if m.Direction != ToAlternate || len(p.Template) == 0 {
		return nil
	}

	pairs := []string{
		"{dirname}", m.Captures.Dirname(),
		"{basename}", m.Captures.Basename,
	}
	for name, value := range m.Captures.Named {
		pairs = append(pairs, "{"+name+"}", value)
	}
	r := strings.NewReplacer(pairs...)

	lines := make([]string, len(p.Template))
	for i, line := range p.Template {
		lines[i] = r.Replace(line)
	}
	return lines
}

func (p *Pattern) String() string {
	return p.Main + " <-> " + p.Alternate
}

func rewrite(from, to *matcher, relPath string) (Mapping, bool) {
	c, ok := from.match(relPath)
	if !ok {
		return Mapping{}, false
	}
	out, ok := to.substitute(c)
	if !ok {
		return Mapping{}, false
	}
	return Mapping{Path: out, Captures: c}, true
}

// Normalize converts both OS-specific and Windows separators to '/'.
func Normalize(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
