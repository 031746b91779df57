package engine

// ResolveRequest represents a request to find an existing alternate file.
type ResolveRequest struct {
	// CWD is the current working directory; relative paths start here
	CWD string

	// File is the file whose alternate is wanted
	File string
}

// CreateRequest represents a request to find an alternate file, creating
// it when none exists.
type CreateRequest struct {
	// CWD is the current working directory
	CWD string

	// File is the file whose alternate is wanted
	File string
}

// CandidatesRequest represents a request to list every candidate alternate.
type CandidatesRequest struct {
	// CWD is the current working directory
	CWD string

	// File is the file whose candidates are listed
	File string
}

// PatternsRequest represents a request to list the compiled patterns.
type PatternsRequest struct {
	// CWD is the current working directory
	CWD string

	// Dir is where the projection file search starts (default: CWD)
	Dir string
}

// CheckRequest represents a request to validate a projection file.
type CheckRequest struct {
	// CWD is the current working directory
	CWD string

	// Dir is where the projection file search starts (default: CWD)
	Dir string
}

// InitRequest represents a request to write a starter projection file.
type InitRequest struct {
	// CWD is the current working directory
	CWD string

	// Dir is where the file is written (default: repository root, or CWD)
	Dir string

	// Preset names the starter configuration
	Preset string

	// Force overwrites an existing projection file
	Force bool
}
