package engine

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/danieljhkim/alternate/internal/resolver"
)

// Resolve finds the existing alternate of a file.
func (e *Engine) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResult, error) {
	abs, set, err := e.prepare(req.File, req.CWD)
	if err != nil {
		return nil, err
	}

	res, err := set.resolver(e.fs, e.logger).FindAlternate(ctx, abs)
	if err != nil {
		return nil, err
	}

	return resolver.Match(res,
		func(f resolver.Found) (*ResolveResult, error) {
			return e.resolveResult(req.File, req.CWD, f.Candidate, set), nil
		},
		func(n resolver.NotFound) (*ResolveResult, error) {
			return nil, n.Err(req.File)
		},
	)
}

// ResolveOrCreate finds the alternate of a file, creating the first
// candidate when none exists. Existing files are never modified.
func (e *Engine) ResolveOrCreate(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	abs, set, err := e.prepare(req.File, req.CWD)
	if err != nil {
		return nil, err
	}

	target, err := set.resolver(e.fs, e.logger).FindOrCreateAlternate(ctx, abs)
	if err != nil {
		// Report the path the way the user typed it.
		var nf *resolver.NotFoundError
		if errors.As(err, &nf) {
			nf.File = req.File
		}
		return nil, err
	}

	return &CreateResult{
		ResolveResult: *e.resolveResult(req.File, req.CWD, target.Candidate, set),
		Created:       target.Created,
	}, nil
}

// Candidates lists every candidate alternate of a file with its existence.
func (e *Engine) Candidates(ctx context.Context, req *CandidatesRequest) (*CandidatesResult, error) {
	abs, set, err := e.prepare(req.File, req.CWD)
	if err != nil {
		return nil, err
	}

	result := &CandidatesResult{
		File:       req.File,
		Config:     set.config.Path,
		Candidates: []CandidateInfo{},
	}

	checked, err := set.resolver(e.fs, e.logger).CheckCandidates(ctx, abs)
	if err != nil {
		return nil, err
	}

	selected := false
	for _, c := range checked {
		info := CandidateInfo{
			Path:      c.Path,
			RelPath:   displayPath(c.Path, req.CWD),
			Pattern:   c.Pattern.String(),
			Direction: c.Mapping.Direction.String(),
			Exists:    c.Exists,
		}
		if c.Exists && !selected {
			info.Selected = true
			selected = true
		}
		result.Candidates = append(result.Candidates, info)
	}

	return result, nil
}

// prepare resolves the user's path and loads the projections governing it.
func (e *Engine) prepare(file, cwd string) (string, *projectionSet, error) {
	abs, err := resolveUserPath(file, cwd)
	if err != nil {
		return "", nil, err
	}

	set, err := e.loadProjections(filepath.Dir(abs))
	if err != nil {
		return "", nil, err
	}
	return abs, set, nil
}

func (e *Engine) resolveResult(file, cwd string, c resolver.Candidate, set *projectionSet) *ResolveResult {
	return &ResolveResult{
		File:      file,
		Path:      c.Path,
		RelPath:   displayPath(c.Path, cwd),
		Direction: c.Mapping.Direction.String(),
		Config:    set.config.Path,
	}
}
