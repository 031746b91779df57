package engine

import (
	"context"

	"github.com/danieljhkim/alternate/internal/projection"
)

// Patterns lists the compiled patterns of the projection file governing a
// directory, in resolution order.
func (e *Engine) Patterns(ctx context.Context, req *PatternsRequest) (*PatternsResult, error) {
	set, err := e.loadDir(req.Dir, req.CWD)
	if err != nil {
		return nil, err
	}

	result := &PatternsResult{
		Config:   set.config.Path,
		Patterns: make([]PatternInfo, 0, len(set.patterns)),
		Problems: problemInfos(set.problems),
	}
	for _, p := range set.patterns {
		result.Patterns = append(result.Patterns, PatternInfo{
			Main:      p.Main,
			Alternate: p.Alternate,
			Template:  p.Template,
		})
	}
	return result, nil
}

// Check validates the projection file governing a directory. Invalid
// entries are reported in the result, not as an error; only an unreadable
// or syntactically broken file fails.
func (e *Engine) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	set, err := e.loadDir(req.Dir, req.CWD)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Config:   set.config.Path,
		Entries:  len(set.config.Entries),
		Patterns: len(set.patterns),
		Problems: problemInfos(set.problems),
	}, nil
}

func (e *Engine) loadDir(dir, cwd string) (*projectionSet, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := resolveUserPath(dir, cwd)
	if err != nil {
		return nil, err
	}
	return e.loadProjections(abs)
}

func problemInfos(problems []*projection.EntryError) []ProblemInfo {
	out := make([]ProblemInfo, 0, len(problems))
	for _, p := range problems {
		out = append(out, ProblemInfo{Main: p.Main, Error: p.Err.Error()})
	}
	return out
}
