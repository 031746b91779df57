// Package projection loads projection files and turns them into patterns.
//
// A projection file maps a "main" glob to one or more "alternate" globs:
//
//	{
//	  "src/*.ts": { "alternate": "src/test/{}.test.ts" },
//	  "app/**/*.rb": { "alternate": ["test/{dirname}/{basename}_spec.rb"] }
//	}
//
// Entries are kept in declaration order because the order decides which
// alternate is preferred and which one is created first. The same document
// can be written as YAML (.projections.yaml, .projections.yml) or HCL
// (.projections.hcl).
package projection

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for projection loading.
var (
	// ErrConfig is matched by every configuration error, fatal or per-entry.
	ErrConfig = errors.New("projection: invalid configuration")

	// ErrNotFound indicates no projection file exists above a path.
	ErrNotFound = errors.New("projection: no projections file found")

	// ErrMissingAlternate indicates an entry without an alternate value.
	ErrMissingAlternate = errors.New("projection: missing alternate")

	// ErrInvalidEntry indicates an entry whose values have the wrong shape.
	ErrInvalidEntry = errors.New("projection: invalid entry")

	// ErrInvalidGlob indicates a glob without its required wildcard or placeholder.
	ErrInvalidGlob = errors.New("projection: invalid glob")
)

// Entry is one row of a projection file.
type Entry struct {
	Main       string
	Alternates []string
	Template   []string
}

// Config is a decoded projection file.
type Config struct {
	// Path is the file the configuration was read from, if any.
	Path string
	// Root is the directory every pattern is anchored to.
	Root    string
	Entries []Entry
	// Problems holds entries that were dropped while decoding.
	Problems []*EntryError
}

// EntryError describes a single invalid entry.
type EntryError struct {
	Main string
	Err  error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("projection %q: %v", e.Main, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Is reports every entry error as a configuration error.
func (e *EntryError) Is(target error) bool {
	return target == ErrConfig
}

// Errors collects the entry errors of one configuration.
type Errors struct {
	Path   string
	Errors []*EntryError
}

// Error implements the error interface.
func (e *Errors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	where := ""
	if e.Path != "" {
		where = " in " + e.Path
	}
	return fmt.Sprintf("%d invalid projection(s)%s: %s", len(e.Errors), where, strings.Join(msgs, "; "))
}

// Is reports the collection as a configuration error.
func (e *Errors) Is(target error) bool {
	return target == ErrConfig
}

// Unwrap exposes the entry errors to errors.Is and errors.As.
func (e *Errors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

func newConfig(path string, entries []Entry, problems []*EntryError) *Config {
	cfg := &Config{Path: path, Entries: entries, Problems: problems}
	if path != "" {
		cfg.Root = filepath.Dir(path)
	}
	return cfg
}
