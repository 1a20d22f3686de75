package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
)

// NavigatorService resolves directives against the commit index and cursor
// and applies them to the repository
type NavigatorService struct {
	indexService *IndexService
	storeOpener  ports.StateStoreOpener
	vcs          ports.VCSRepository
}

// NewNavigatorService creates a new NavigatorService
func NewNavigatorService(
	indexService *IndexService,
	storeOpener ports.StateStoreOpener,
	vcs ports.VCSRepository,
) *NavigatorService {
	return &NavigatorService{
		indexService: indexService,
		storeOpener:  storeOpener,
		vcs:          vcs,
	}
}

// Preflight checks that repoPath exists and is a git repository
func (s *NavigatorService) Preflight(repoPath string) error {
	if _, err := os.Stat(repoPath); err != nil {
		if os.IsNotExist(err) {
			return &domain.PreflightError{Path: repoPath, Err: domain.ErrRepositoryNotFound}
		}
		return fmt.Errorf("failed to inspect %s: %w", repoPath, err)
	}
	if !s.vcs.IsRepository(repoPath) {
		return &domain.PreflightError{Path: repoPath, Err: domain.ErrNotARepository}
	}
	return nil
}

// Run executes one directive end to end: open the store, load or rebuild the
// index, resolve and apply. The returned outcome may be non-nil together with
// an error (e.g. the branch announcement printed before a failed checkout).
func (s *NavigatorService) Run(ctx context.Context, params RunParams) (*Outcome, error) {
	logging.Logger.Info("Running directive", "repo", params.RepoPath, "directive", params.Directive.Kind.String())

	store, err := s.storeOpener.Open(params.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Logger.Warn("Failed to close state store", "error", err)
		}
	}()

	if params.Directive.Kind == domain.DirectiveReset {
		return s.reset(ctx, params.RepoPath, store)
	}

	idx, rebuilt, err := s.indexService.Ensure(ctx, params.RepoPath, store, false)
	if err != nil {
		return nil, err
	}

	// a rebuilt index invalidates the cursor
	var cursor *int
	if rebuilt {
		if err := store.ClearCursor(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear cursor: %w", err)
		}
	} else if cursor, err = store.LoadCursor(ctx); err != nil {
		return nil, err
	}
	logging.Logger.Debug("Navigation state loaded", "commits", idx.Len(), "cursor", cursorAttr(cursor))

	var outcome *Outcome
	if !params.Directive.IsMove() {
		outcome = s.List(idx, cursor)
	} else {
		res := domain.Resolve(params.Directive, idx, cursor)
		outcome, err = s.Apply(ctx, params.RepoPath, store, idx, res)
	}
	if outcome != nil {
		outcome.Rebuilt = rebuilt
	}
	return outcome, err
}

// List renders every entry, oldest first, marking the cursor. It never mutates state.
func (s *NavigatorService) List(idx domain.CommitIndex, cursor *int) *Outcome {
	outcome := newOutcome()
	outcome.Lines = domain.RenderList(idx, cursor)
	if cursor != nil && *cursor >= 0 && *cursor < idx.Len() {
		outcome.Current = *cursor
	}
	return outcome
}

// Apply performs a resolved move. Checkout happens first; the cursor is only
// persisted after the checkout succeeded.
func (s *NavigatorService) Apply(
	ctx context.Context,
	repoPath string,
	store ports.CursorStore,
	idx domain.CommitIndex,
	res domain.Resolution,
) (*Outcome, error) {
	switch res.Kind {
	case domain.ResolvedError:
		logging.Logger.Info("Directive rejected", "error", res.Err)
		return nil, res.Err

	case domain.ResolvedBranch:
		if err := s.vcs.ValidateBranchName(res.Branch); err != nil {
			return nil, err
		}
		outcome := newOutcome()
		outcome.Lines = append(outcome.Lines, fmt.Sprintf("Checking out branch %s", res.Branch))
		if err := s.vcs.Checkout(ctx, repoPath, res.Branch); err != nil {
			return outcome, err
		}
		return outcome, nil

	case domain.ResolvedIndex:
		commit := idx.At(res.Index)
		if err := s.vcs.Checkout(ctx, repoPath, commit.ID); err != nil {
			return nil, err
		}
		if err := store.SaveCursor(ctx, res.Index); err != nil {
			logging.Logger.Error("Checked out but cursor not saved", "index", res.Index, "commit", commit.ID, "error", err)
			return nil, fmt.Errorf("failed to save cursor: %w", err)
		}
		logging.Logger.Info("Moved cursor", "index", res.Index, "commit", commit.ID)

		outcome := newOutcome()
		outcome.Lines = []string{domain.FormatEntry(idx, res.Index, true)}
		outcome.Current = 0
		return outcome, nil
	}

	return nil, fmt.Errorf("unknown resolution kind %d", res.Kind)
}

// reset rebuilds the index from the log and forgets the cursor
func (s *NavigatorService) reset(ctx context.Context, repoPath string, store ports.StateStore) (*Outcome, error) {
	idx, _, err := s.indexService.Ensure(ctx, repoPath, store, true)
	if err != nil {
		return nil, err
	}
	if err := store.ClearCursor(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cursor: %w", err)
	}

	logging.Logger.Info("Navigation state reset", "repo", repoPath, "commits", idx.Len())
	outcome := newOutcome()
	outcome.Rebuilt = true
	return outcome, nil
}

// IsUserError reports whether err is an expected, user-facing failure that
// is printed as a single line without a failing exit status
func IsUserError(err error) bool {
	for _, target := range []error{
		domain.ErrEmptyHistory,
		domain.ErrIndexTooLow,
		domain.ErrIndexTooHigh,
		domain.ErrCheckoutFailed,
		domain.ErrInvalidBranchName,
		domain.ErrMalformedLog,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func cursorAttr(cursor *int) any {
	if cursor == nil {
		return "none"
	}
	return *cursor
}
