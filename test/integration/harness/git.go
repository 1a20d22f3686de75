package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a throwaway repository on branch main whose commits are
// named "commit 0".."commit n-1", oldest first.
type TestRepo struct {
	Path   string
	Hashes []string // oldest first
	tb     testing.TB
}

// NewTestRepo creates a repository with n commits. n may be 0 (unborn HEAD).
func NewTestRepo(tb testing.TB, n int) *TestRepo {
	tb.Helper()

	r := &TestRepo{Path: filepath.Join(tb.TempDir(), "repo"), tb: tb}
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		tb.Fatalf("Failed to create repo directory: %v", err)
	}

	r.Git("init", "-b", "main")
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "Test User")

	for i := 0; i < n; i++ {
		r.Commit()
	}
	return r
}

// Commit adds the next numbered commit
func (r *TestRepo) Commit() {
	r.tb.Helper()
	i := len(r.Hashes)
	file := filepath.Join(r.Path, "file.txt")
	if err := os.WriteFile(file, []byte(fmt.Sprintf("v%d\n", i)), 0644); err != nil {
		r.tb.Fatalf("Failed to write file: %v", err)
	}
	r.Git("add", "file.txt")
	r.Git("commit", "-m", fmt.Sprintf("commit %d", i))
	r.Hashes = append(r.Hashes, r.Git("rev-parse", "HEAD"))
}

// Head returns the commit currently checked out
func (r *TestRepo) Head() string {
	r.tb.Helper()
	return r.Git("rev-parse", "HEAD")
}

// Git runs a git command inside the repository and returns its trimmed output.
func (r *TestRepo) Git(args ...string) string {
	r.tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		r.tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, r.Path, err, output)
	}
	return strings.TrimSpace(string(output))
}
