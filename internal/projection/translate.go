package projection

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/alternate/internal/pattern"
)

// MainPattern translates a main glob into placeholder form.
//
// "**" becomes {dirname} and the remaining "*" becomes {basename}. A glob
// without "**" gets an implicit "**/" before its "*", so "src/*.ts" and
// "src/**/*.ts" both become "src/{dirname}/{basename}.ts".
func MainPattern(glob string) (string, error) {
	glob = pattern.Normalize(glob)
	if !strings.Contains(glob, "*") {
		return "", fmt.Errorf("%w: main %q must contain '*'", ErrInvalidGlob, glob)
	}

	tagged := glob
	if !strings.Contains(glob, "**") {
		tagged = strings.Replace(glob, "*", "**/*", 1)
	}

	out := strings.Replace(tagged, "**", "{dirname}", 1)
	out = strings.Replace(out, "*", "{basename}", 1)
	if strings.Contains(out, "*") {
		return "", fmt.Errorf("%w: main %q has more than one '*' wildcard", ErrInvalidGlob, glob)
	}
	return out, nil
}

// AlternatePattern translates an alternate glob into placeholder form.
//
// "{}" mirrors the whole relative path ({dirname}/{basename}); a bare "*"
// stands for {basename} only. "**/" is accepted as {dirname}/.
func AlternatePattern(glob string) (string, error) {
	glob = pattern.Normalize(glob)
	if !strings.Contains(glob, "*") && !strings.Contains(glob, "{}") && !strings.Contains(glob, "{basename}") {
		return "", fmt.Errorf("%w: alternate %q must contain '*', '{}' or '{basename}'", ErrInvalidGlob, glob)
	}

	out := strings.ReplaceAll(glob, "{}", "{dirname}/{basename}")
	out = strings.ReplaceAll(out, "**/", "{dirname}/")
	out = strings.ReplaceAll(out, "*", "{basename}")
	return out, nil
}

// Parse compiles the configuration into patterns, one per alternate, in
// declaration order. Invalid entries are skipped and reported through an
// *Errors value alongside the patterns that did compile.
func Parse(cfg *Config) ([]*pattern.Pattern, error) {
	problems := append([]*EntryError(nil), cfg.Problems...)
	var patterns []*pattern.Pattern

	for _, entry := range cfg.Entries {
		compiled, err := compileEntry(entry)
		if err != nil {
			problems = append(problems, &EntryError{Main: entry.Main, Err: err})
			continue
		}
		patterns = append(patterns, compiled...)
	}

	if len(problems) > 0 {
		return patterns, &Errors{Path: cfg.Path, Errors: problems}
	}
	return patterns, nil
}

// compileEntry fans one entry out into a pattern per alternate. An entry is
// all-or-nothing so a partially valid list cannot shift creation targets.
func compileEntry(entry Entry) ([]*pattern.Pattern, error) {
	if len(entry.Alternates) == 0 {
		return nil, ErrMissingAlternate
	}

	main, err := MainPattern(entry.Main)
	if err != nil {
		return nil, err
	}

	patterns := make([]*pattern.Pattern, 0, len(entry.Alternates))
	for _, glob := range entry.Alternates {
		alt, err := AlternatePattern(glob)
		if err != nil {
			return nil, err
		}
		p, err := pattern.Compile(main, alt)
		if err != nil {
			return nil, err
		}
		if len(entry.Template) > 0 {
			p = p.WithTemplate(entry.Template)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
