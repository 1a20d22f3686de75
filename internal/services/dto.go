package services

import "github.com/renato0307/gitwalk/internal/domain"

// RunParams contains the parameters of one gitwalk invocation
type RunParams struct {
	Directive domain.Directive
	RepoPath  string
}

// Outcome contains what a run produced for display
type Outcome struct {
	// Lines are printed in order, one per line
	Lines []string
	// Current is the position in Lines of the cursor line, -1 when there is none
	Current int
	// Rebuilt is true when the commit index was rebuilt from the log during this run
	Rebuilt bool
}

func newOutcome() *Outcome {
	return &Outcome{Current: -1}
}
