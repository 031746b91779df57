// Package resolver finds and creates alternate files.
//
// Given a file path and a list of patterns, the resolver derives every
// candidate alternate path (applying each pattern in both directions),
// checks which candidates exist, and returns the first existing one in
// pattern order. When none exist, FindOrCreateAlternate creates the first
// candidate.
//
// Outcomes are values: FindAlternate returns a Found or NotFound
// Resolution, and expected failures of FindOrCreateAlternate are typed
// errors matching ErrNoPatternMatch, ErrFileNotFound or ErrCreationFailed.
package resolver

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/alternate/internal/pattern"
)

// maxConcurrentChecks bounds the existence checks in flight per request.
const maxConcurrentChecks = 16

// Gateway is the storage capability the resolver needs.
type Gateway interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// CreateExclusive creates path with data and fails if it already exists.
	CreateExclusive(path string, data []byte, perm os.FileMode) error
}

// Resolver resolves alternate files for one set of patterns. It holds no
// state between calls.
type Resolver struct {
	root     string
	patterns []*pattern.Pattern
	fs       Gateway
	logger   *slog.Logger
}

// New creates a Resolver. root is the directory patterns are relative to,
// normally the directory holding the projection file.
func New(root string, patterns []*pattern.Pattern, fs Gateway, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		root:     filepath.Clean(root),
		patterns: patterns,
		fs:       fs,
		logger:   logger,
	}
}

// Candidates derives every alternate path for filePath without touching
// storage. Candidates keep pattern order and are unique by absolute path.
// Files outside the root have no candidates.
func (r *Resolver) Candidates(filePath string) []Candidate {
	rel, ok := r.relative(filePath)
	if !ok {
		r.logger.Debug("file is outside the projection root", "file", filePath, "root", r.root)
		return nil
	}

	seen := make(map[string]bool)
	var candidates []Candidate
	for _, p := range r.patterns {
		m, ok := p.AlternatePath(rel)
		if !ok {
			continue
		}

		abs := filepath.Join(r.root, filepath.FromSlash(m.Path))
		if seen[abs] {
			continue
		}
		seen[abs] = true

		r.logger.Debug("candidate", "pattern", p.String(), "direction", m.Direction.String(), "path", abs)
		candidates = append(candidates, Candidate{Path: abs, Pattern: p, Mapping: m})
	}
	return candidates
}

// CheckCandidates derives the candidates of filePath and checks whether
// each exists. Checks run concurrently and the result keeps candidate order.
// A check that fails with an I/O error counts as missing.
func (r *Resolver) CheckCandidates(ctx context.Context, filePath string) ([]Checked, error) {
	candidates := r.Candidates(filePath)
	checked := make([]Checked, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)
	for i, c := range candidates {
		checked[i].Candidate = c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := r.fs.Exists(c.Path)
			if err != nil {
				r.logger.Warn("existence check failed", "path", c.Path, "error", err)
				return nil
			}
			checked[i].Exists = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return checked, nil
}

// FindAlternate returns the first candidate, in pattern order, that exists.
// Completion order of the concurrent checks never affects the result.
func (r *Resolver) FindAlternate(ctx context.Context, filePath string) (Resolution, error) {
	checked, err := r.CheckCandidates(ctx, filePath)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(checked))
	for i, c := range checked {
		if c.Exists {
			return Found{Path: c.Path, Candidate: c.Candidate}, nil
		}
		candidates[i] = c.Candidate
	}
	if len(candidates) == 0 {
		return NotFound{}, nil
	}
	return NotFound{Candidates: candidates}, nil
}

// FindOrCreateAlternate returns the existing alternate, or creates the first
// candidate (seeded from its pattern's template) when none exists. Existing
// files are never rewritten. Once creation starts it is not cancelled.
func (r *Resolver) FindOrCreateAlternate(ctx context.Context, filePath string) (Target, error) {
	res, err := r.FindAlternate(ctx, filePath)
	if err != nil {
		return Target{}, err
	}

	switch res := res.(type) {
	case Found:
		return Target{Path: res.Path, Candidate: res.Candidate}, nil
	case NotFound:
		if len(res.Candidates) == 0 {
			return Target{}, res.Err(filePath)
		}

		first := res.Candidates[0]
		if err := r.fs.CreateExclusive(first.Path, first.Template(), 0644); err != nil {
			return Target{}, &CreationError{File: filePath, Path: first.Path, Err: err}
		}
		r.logger.Info("created alternate file", "path", first.Path, "from", filePath)
		return Target{Path: first.Path, Candidate: first, Created: true}, nil
	default:
		panic("resolver: unknown resolution")
	}
}

// relative converts filePath into a slash-separated path relative to the
// root. Relative inputs are taken relative to the root, not the process.
func (r *Resolver) relative(filePath string) (string, bool) {
	p := filepath.FromSlash(pattern.Normalize(filePath))
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.root, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(r.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
