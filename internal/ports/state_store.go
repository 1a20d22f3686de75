package ports

import (
	"context"

	"github.com/renato0307/gitwalk/internal/domain"
)

// CommitIndexStore persists the commit tape under the "commits" key
type CommitIndexStore interface {
	// LoadIndex returns domain.ErrMissingIndex when the index was never built
	LoadIndex(ctx context.Context) (domain.CommitIndex, error)
	SaveIndex(ctx context.Context, idx domain.CommitIndex) error
}

// CursorStore persists the optional cursor under the "cursor" key
type CursorStore interface {
	// LoadCursor returns nil when no cursor is stored
	LoadCursor(ctx context.Context) (*int, error)
	SaveCursor(ctx context.Context, cursor int) error
	ClearCursor(ctx context.Context) error
}

// StateStore is the composite per-repository store
type StateStore interface {
	CommitIndexStore
	CursorStore
	Close() error
}

// StateStoreOpener opens the store belonging to a repository path
type StateStoreOpener interface {
	Open(repoPath string) (StateStore, error)
}
