package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
)

// gitDateLayout matches the Date: line of `git log --pretty=medium`
const gitDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// GoGitRepository implements ports.VCSRepository in pure Go, without a git binary
type GoGitRepository struct {
	open func(path string) (*gogit.Repository, error)
}

// Verify interface compliance at compile time
var _ ports.VCSRepository = (*GoGitRepository)(nil)

// NewGoGitRepository creates a GoGitRepository that opens repositories from disk
func NewGoGitRepository() *GoGitRepository {
	return &GoGitRepository{open: gogit.PlainOpen}
}

// IsRepository implements RepoInspector.IsRepository
func (r *GoGitRepository) IsRepository(path string) bool {
	return hasDotGit(path)
}

// ValidateBranchName implements BranchValidator.ValidateBranchName
func (r *GoGitRepository) ValidateBranchName(name string) error {
	return validateBranchName(name)
}

// Log implements LogReader.Log, rendering history in the same layout as `git log`
func (r *GoGitRepository) Log(ctx context.Context, repoPath string) (string, error) {
	repo, err := r.open(repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logging.Logger.Info("Repository has no commits yet", "repo", repoPath)
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash(), Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return "", fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	var sb strings.Builder
	count := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		writeCommit(&sb, c)
		count++
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk log: %w", err)
	}

	logging.Logger.Debug("Commit log rendered", "repo", repoPath, "commits", count)
	return sb.String(), nil
}

// Checkout implements Checkouter.Checkout.
// Local branches are checked out by reference, anything else is resolved
// to a commit and checked out detached.
func (r *GoGitRepository) Checkout(ctx context.Context, repoPath, treeish string) error {
	logging.Logger.Info("Checking out", "repo", repoPath, "treeish", treeish, "backend", "gogit")

	repo, err := r.open(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return &domain.CheckoutError{Treeish: treeish, Diagnostic: err.Error()}
	}

	opts := &gogit.CheckoutOptions{}
	branchRef := plumbing.NewBranchReferenceName(treeish)
	if _, err := repo.Reference(branchRef, true); err == nil {
		opts.Branch = branchRef
	} else {
		hash, err := repo.ResolveRevision(plumbing.Revision(treeish))
		if err != nil {
			return &domain.CheckoutError{
				Treeish:    treeish,
				Diagnostic: fmt.Sprintf("error: pathspec '%s' did not match any file(s) known to git", treeish),
			}
		}
		opts.Hash = *hash
	}

	dirty, err := localChanges(worktree)
	if err != nil {
		return &domain.CheckoutError{Treeish: treeish, Diagnostic: err.Error()}
	}
	if len(dirty) > 0 {
		logging.Logger.Warn("Refusing checkout over local changes", "treeish", treeish, "files", dirty)
		return &domain.CheckoutError{
			Treeish:    treeish,
			Diagnostic: "error: your local changes would be overwritten by checkout: " + strings.Join(dirty, ", "),
		}
	}

	// Worktree.Checkout moves HEAD before resetting the tree
	previous, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return &domain.CheckoutError{Treeish: treeish, Diagnostic: err.Error()}
	}
	if err := worktree.Checkout(opts); err != nil {
		logging.Logger.Error("gogit checkout failed", "treeish", treeish, "error", err)
		if restoreErr := repo.Storer.SetReference(previous); restoreErr != nil {
			logging.Logger.Error("Failed to restore HEAD", "head", previous.String(), "error", restoreErr)
		}
		return &domain.CheckoutError{Treeish: treeish, Diagnostic: err.Error()}
	}

	logging.Logger.Info("Checkout succeeded", "treeish", treeish)
	return nil
}

// localChanges lists tracked paths that differ from HEAD, sorted; untracked files are ignored like git does
func localChanges(worktree *gogit.Worktree) ([]string, error) {
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	var dirty []string
	for path, fs := range status {
		if fs.Worktree == gogit.Untracked && fs.Staging == gogit.Untracked {
			continue
		}
		if fs.Worktree != gogit.Unmodified || fs.Staging != gogit.Unmodified {
			dirty = append(dirty, path)
		}
	}
	slices.Sort(dirty)
	return dirty, nil
}

func writeCommit(sb *strings.Builder, c *object.Commit) {
	fmt.Fprintf(sb, "commit %s\n", c.Hash)
	if len(c.ParentHashes) > 1 {
		parents := make([]string, len(c.ParentHashes))
		for i, p := range c.ParentHashes {
			parents[i] = p.String()[:7]
		}
		fmt.Fprintf(sb, "Merge: %s\n", strings.Join(parents, " "))
	}
	fmt.Fprintf(sb, "Author: %s <%s>\n", c.Author.Name, c.Author.Email)
	fmt.Fprintf(sb, "Date:   %s\n\n", c.Author.When.Format(gitDateLayout))
	for _, line := range strings.Split(strings.TrimRight(c.Message, "\n"), "\n") {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		fmt.Fprintf(sb, "    %s\n", line)
	}
	sb.WriteString("\n")
}
