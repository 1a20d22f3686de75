package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
)

// CLIRepository implements ports.VCSRepository using local git commands
type CLIRepository struct {
	gitBinary string
}

// Verify interface compliance at compile time
var _ ports.VCSRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{gitBinary: "git"}
}

// IsRepository implements RepoInspector.IsRepository
func (r *CLIRepository) IsRepository(path string) bool {
	return hasDotGit(path)
}

// ValidateBranchName implements BranchValidator.ValidateBranchName
func (r *CLIRepository) ValidateBranchName(name string) error {
	return validateBranchName(name)
}

// Log implements LogReader.Log.
// A repository without commits yields an empty log.
func (r *CLIRepository) Log(ctx context.Context, repoPath string) (string, error) {
	logging.Logger.Debug("Reading commit log", "repo", repoPath)

	if !r.hasHead(ctx, repoPath) {
		logging.Logger.Info("Repository has no commits yet", "repo", repoPath)
		return "", nil
	}

	cmd := r.command(ctx, repoPath, "log", "--no-color", "--no-decorate", "--pretty=medium")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Error("git log failed", "error", err, "stderr", stderr.String())
		return "", fmt.Errorf("failed to read git log: %w\nOutput: %s", err, strings.TrimSpace(stderr.String()))
	}

	logging.Logger.Debug("Commit log read", "bytes", len(output))
	return string(output), nil
}

// Checkout implements Checkouter.Checkout.
// The trailing "--" keeps git from treating treeish as a path.
func (r *CLIRepository) Checkout(ctx context.Context, repoPath, treeish string) error {
	logging.Logger.Info("Checking out", "repo", repoPath, "treeish", treeish)

	cmd := r.command(ctx, repoPath, "checkout", treeish, "--")
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// git could not be started at all
			return fmt.Errorf("failed to run git checkout: %w", err)
		}
		diagnostic := strings.TrimSpace(string(output))
		logging.Logger.Error("git checkout failed", "treeish", treeish, "exit_code", exitErr.ExitCode(), "output", diagnostic)
		return &domain.CheckoutError{Treeish: treeish, Diagnostic: diagnostic}
	}

	logging.Logger.Info("Checkout succeeded", "treeish", treeish)
	return nil
}

func (r *CLIRepository) hasHead(ctx context.Context, repoPath string) bool {
	cmd := r.command(ctx, repoPath, "rev-parse", "--verify", "--quiet", "HEAD")
	return cmd.Run() == nil
}

func (r *CLIRepository) command(ctx context.Context, repoPath string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.gitBinary, args...)
	cmd.Dir = repoPath
	return cmd
}

// hasDotGit reports whether path contains a .git entry (directory, or file for worktrees)
func hasDotGit(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
