package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
)

// IndexService builds and caches the commit index of a repository
type IndexService struct {
	logReader ports.LogReader
}

// NewIndexService creates a new IndexService
func NewIndexService(logReader ports.LogReader) *IndexService {
	return &IndexService{
		logReader: logReader,
	}
}

// Build reads the repository log once and parses it into an oldest-first index
func (s *IndexService) Build(ctx context.Context, repoPath string) (domain.CommitIndex, error) {
	logging.Logger.Info("Building commit index", "repo", repoPath)

	text, err := s.logReader.Log(ctx, repoPath)
	if err != nil {
		return domain.CommitIndex{}, err
	}

	records, err := domain.ParseLog(text)
	if err != nil {
		logging.Logger.Error("Commit log could not be parsed", "repo", repoPath, "error", err)
		return domain.CommitIndex{}, err
	}

	logging.Logger.Info("Commit index built", "repo", repoPath, "commits", len(records))
	return domain.NewCommitIndex(records), nil
}

// Load reads the cached index; domain.ErrMissingIndex means it must be built first
func (s *IndexService) Load(ctx context.Context, store ports.CommitIndexStore) (domain.CommitIndex, error) {
	return store.LoadIndex(ctx)
}

// Rebuild builds the index from the log and replaces the cached copy
func (s *IndexService) Rebuild(ctx context.Context, repoPath string, store ports.CommitIndexStore) (domain.CommitIndex, error) {
	idx, err := s.Build(ctx, repoPath)
	if err != nil {
		return domain.CommitIndex{}, err
	}

	if err := store.SaveIndex(ctx, idx); err != nil {
		return domain.CommitIndex{}, fmt.Errorf("failed to save commit index: %w", err)
	}
	return idx, nil
}

// Ensure returns the cached index, rebuilding it when it is missing or when
// rebuild is requested. A cached index is authoritative even if the
// repository has changed since it was built.
// The boolean result reports whether a rebuild happened.
func (s *IndexService) Ensure(ctx context.Context, repoPath string, store ports.CommitIndexStore, rebuild bool) (domain.CommitIndex, bool, error) {
	if !rebuild {
		idx, err := s.Load(ctx, store)
		if err == nil {
			return idx, false, nil
		}
		if !errors.Is(err, domain.ErrMissingIndex) {
			return domain.CommitIndex{}, false, err
		}
		logging.Logger.Info("No cached commit index", "repo", repoPath, "reason", err)
	}

	idx, err := s.Rebuild(ctx, repoPath, store)
	if err != nil {
		return domain.CommitIndex{}, false, err
	}
	return idx, true, nil
}
