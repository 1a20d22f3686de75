package ports

import "context"

// RepoInspector answers pre-flight questions about a path
type RepoInspector interface {
	IsRepository(path string) bool
}

// LogReader reads the newest-first commit log of a repository
type LogReader interface {
	Log(ctx context.Context, repoPath string) (string, error)
}

// Checkouter moves the working tree to a commit or branch
type Checkouter interface {
	Checkout(ctx context.Context, repoPath, treeish string) error
}

// BranchValidator rejects branch names before they reach the VCS
type BranchValidator interface {
	ValidateBranchName(name string) error
}

// VCSRepository is the composite interface
type VCSRepository interface {
	BranchValidator
	Checkouter
	LogReader
	RepoInspector
}
