package engine

// ResolveResult represents an alternate file that exists.
type ResolveResult struct {
	// File is the input path as given
	File string `json:"file"`

	// Path is the absolute alternate path
	Path string `json:"path"`

	// RelPath is Path relative to the working directory when below it
	RelPath string `json:"relPath"`

	// Direction is "main->alternate" or "alternate->main"
	Direction string `json:"direction"`

	// Config is the projection file that produced the mapping
	Config string `json:"config"`
}

// CreateResult represents the outcome of find-or-create.
type CreateResult struct {
	ResolveResult

	// Created is true when the file did not exist before
	Created bool `json:"created"`
}

// CandidateInfo describes one candidate alternate path.
type CandidateInfo struct {
	Path      string `json:"path"`
	RelPath   string `json:"relPath"`
	Pattern   string `json:"pattern"`
	Direction string `json:"direction"`
	Exists    bool   `json:"exists"`

	// Selected marks the candidate a lookup would return
	Selected bool `json:"selected"`
}

// CandidatesResult lists candidates in resolution order.
type CandidatesResult struct {
	File       string          `json:"file"`
	Config     string          `json:"config"`
	Candidates []CandidateInfo `json:"candidates"`
}

// PatternInfo describes a compiled pattern.
type PatternInfo struct {
	Main      string   `json:"main"`
	Alternate string   `json:"alternate"`
	Template  []string `json:"template,omitempty"`
}

// ProblemInfo describes an entry that was skipped.
type ProblemInfo struct {
	Main  string `json:"main"`
	Error string `json:"error"`
}

// PatternsResult lists the patterns of a projection file in declaration order.
type PatternsResult struct {
	Config   string        `json:"config"`
	Patterns []PatternInfo `json:"patterns"`
	Problems []ProblemInfo `json:"problems,omitempty"`
}

// CheckResult summarizes the validation of a projection file.
type CheckResult struct {
	Config   string        `json:"config"`
	Entries  int           `json:"entries"`
	Patterns int           `json:"patterns"`
	Problems []ProblemInfo `json:"problems"`
}

// OK reports whether every entry compiled.
func (r *CheckResult) OK() bool {
	return len(r.Problems) == 0
}

// InitResult represents a written starter projection file.
type InitResult struct {
	Path        string `json:"path"`
	Preset      string `json:"preset"`
	Entries     int    `json:"entries"`
	Overwritten bool   `json:"overwritten"`
}
