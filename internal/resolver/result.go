package resolver

import (
	"fmt"

	"github.com/danieljhkim/alternate/internal/pattern"
)

// Candidate is a syntactically derived alternate path that may not exist yet.
type Candidate struct {
	// Path is absolute and cleaned.
	Path    string
	Pattern *pattern.Pattern
	Mapping pattern.Mapping
}

// Template renders the seed content for creating this candidate.
func (c Candidate) Template() []byte {
	lines := c.Pattern.TemplateFor(c.Mapping)
	if len(lines) == 0 {
		return nil
	}

	var out []byte
	for _, line := range lines {
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Resolution is the outcome of FindAlternate: either Found or NotFound.
type Resolution interface {
	isResolution()
}

// Found is a Resolution carrying the first existing candidate.
type Found struct {
	Path      string
	Candidate Candidate
}

// NotFound is a Resolution carrying every candidate that was checked, in
// pattern order. It is empty when no pattern matched at all.
type NotFound struct {
	Candidates []Candidate
}

func (Found) isResolution()    {}
func (NotFound) isResolution() {}

// Paths returns the attempted candidate paths.
func (n NotFound) Paths() []string {
	paths := make([]string, len(n.Candidates))
	for i, c := range n.Candidates {
		paths[i] = c.Path
	}
	return paths
}

// Err converts the variant into the error reported to callers: a no-match
// error when nothing matched, a file-not-found error otherwise.
func (n NotFound) Err(file string) error {
	return &NotFoundError{File: file, Candidates: n.Paths()}
}

// Match dispatches on the variant of res and returns what the chosen
// handler returns.
func Match[T any](res Resolution, found func(Found) (T, error), notFound func(NotFound) (T, error)) (T, error) {
	switch r := res.(type) {
	case Found:
		return found(r)
	case NotFound:
		return notFound(r)
	default:
		panic(fmt.Sprintf("resolver: unknown resolution %T", res))
	}
}

// Checked is a candidate together with the outcome of its existence check.
type Checked struct {
	Candidate
	Exists bool
}

// Target is the outcome of FindOrCreateAlternate.
type Target struct {
	Path      string
	Candidate Candidate
	// Created is true when the file did not exist and was created.
	Created bool
}
