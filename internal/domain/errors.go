package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCheckoutFailed     = errors.New("checkout failed")
	ErrEmptyHistory       = errors.New("No commit found.")
	ErrIndexTooHigh       = errors.New("index too high")
	ErrIndexTooLow        = errors.New("index too low")
	ErrInvalidBranchName  = errors.New("invalid branch name")
	ErrMalformedLog       = errors.New("malformed commit log")
	ErrMissingIndex       = errors.New("commit index not built")
	ErrNotARepository     = errors.New("not a git repository")
	ErrRepositoryNotFound = errors.New("repository does not exist")
)

// IndexError reports a numeric target outside [0, len-1].
type IndexError struct {
	Index int
	Low   bool
}

func (e *IndexError) Error() string {
	if e.Low {
		return fmt.Sprintf("Index %d is less than 0.", e.Index)
	}
	return fmt.Sprintf("Index %d is greater than the largest commit index.", e.Index)
}

// Is lets errors.Is match ErrIndexTooLow / ErrIndexTooHigh
func (e *IndexError) Is(target error) bool {
	if e.Low {
		return target == ErrIndexTooLow
	}
	return target == ErrIndexTooHigh
}

// MalformedLogError describes the commit block that could not be parsed
type MalformedLogError struct {
	Block  int // zero-based block number in log order (newest first)
	Reason string
}

func (e *MalformedLogError) Error() string {
	return fmt.Sprintf("malformed commit log: block %d: %s", e.Block, e.Reason)
}

func (e *MalformedLogError) Is(target error) bool {
	return target == ErrMalformedLog
}

// CheckoutError carries the diagnostic text printed by the VCS.
// Diagnostic is kept verbatim; Error folds it onto a single line.
type CheckoutError struct {
	Treeish    string
	Diagnostic string
}

func (e *CheckoutError) Error() string {
	line := strings.Join(strings.Fields(e.Diagnostic), " ")
	if line == "" {
		return fmt.Sprintf("checkout of %s failed", e.Treeish)
	}
	return line
}

func (e *CheckoutError) Is(target error) bool {
	return target == ErrCheckoutFailed
}

// PreflightError reports a repository path that cannot be walked
type PreflightError struct {
	Path string
	Err  error // ErrRepositoryNotFound or ErrNotARepository
}

func (e *PreflightError) Error() string {
	if errors.Is(e.Err, ErrNotARepository) {
		return fmt.Sprintf("Directory %s is not a git repository.", e.Path)
	}
	return fmt.Sprintf("Directory %s does not exist.", e.Path)
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}
