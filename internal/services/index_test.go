package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwalk/internal/domain"
	portsmocks "github.com/renato0307/gitwalk/internal/ports/mocks"
)

// fakeLog renders n commits in git's medium format, newest first.
// Commit i has id "c<i>" and summary "commit <i>".
func fakeLog(n int) string {
	var b strings.Builder
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "commit c%d\n", i)
		b.WriteString("Author: Test <test@test.com>\n")
		b.WriteString("Date:   Mon Jan 1 10:00:00 2024 +0000\n\n")
		fmt.Fprintf(&b, "    commit %d\n\n", i)
	}
	return b.String()
}

func fakeIndex(n int) domain.CommitIndex {
	records := make([]domain.CommitRecord, n)
	for i := range records {
		records[i] = domain.CommitRecord{ID: fmt.Sprintf("c%d", i), Summary: fmt.Sprintf("commit %d", i)}
	}
	return domain.NewCommitIndex(records)
}

func TestIndexService_BuildParsesLogOldestFirst(t *testing.T) {
	vcs := portsmocks.NewMockVCSRepository(t)
	vcs.EXPECT().Log(mock.Anything, "/repo").Return(fakeLog(3), nil)

	idx, err := NewIndexService(vcs).Build(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, fakeIndex(3), idx)
}

func TestIndexService_BuildMalformedLog(t *testing.T) {
	vcs := portsmocks.NewMockVCSRepository(t)
	vcs.EXPECT().Log(mock.Anything, "/repo").Return("garbage before any header\n", nil)

	_, err := NewIndexService(vcs).Build(context.Background(), "/repo")

	assert.ErrorIs(t, err, domain.ErrMalformedLog)
}

func TestIndexService_Ensure(t *testing.T) {
	cached := fakeIndex(2)

	tests := []struct {
		name        string
		rebuild     bool
		loadErr     error
		wantRebuilt bool
		wantIndex   domain.CommitIndex
		wantErr     error
	}{
		{
			name:      "cached index is used as-is",
			wantIndex: cached,
		},
		{
			name:        "missing index is built and saved",
			loadErr:     domain.ErrMissingIndex,
			wantRebuilt: true,
			wantIndex:   fakeIndex(4),
		},
		{
			name:        "inconsistent index is rebuilt",
			loadErr:     fmt.Errorf("%w: stored index is inconsistent", domain.ErrMissingIndex),
			wantRebuilt: true,
			wantIndex:   fakeIndex(4),
		},
		{
			name:        "forced rebuild ignores the cache",
			rebuild:     true,
			wantRebuilt: true,
			wantIndex:   fakeIndex(4),
		},
		{
			name:    "store failure is returned",
			loadErr: errors.New("disk on fire"),
			wantErr: errors.New("disk on fire"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vcs := portsmocks.NewMockVCSRepository(t)
			store := portsmocks.NewMockStateStore(t)

			if !tt.rebuild {
				if tt.loadErr != nil {
					store.EXPECT().LoadIndex(mock.Anything).Return(domain.CommitIndex{}, tt.loadErr)
				} else {
					store.EXPECT().LoadIndex(mock.Anything).Return(cached, nil)
				}
			}
			if tt.wantRebuilt {
				vcs.EXPECT().Log(mock.Anything, "/repo").Return(fakeLog(4), nil)
				store.EXPECT().SaveIndex(mock.Anything, fakeIndex(4)).Return(nil)
			}

			idx, rebuilt, err := NewIndexService(vcs).Ensure(context.Background(), "/repo", store, tt.rebuild)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRebuilt, rebuilt)
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

func TestIndexService_RebuildSaveFailure(t *testing.T) {
	vcs := portsmocks.NewMockVCSRepository(t)
	store := portsmocks.NewMockStateStore(t)
	vcs.EXPECT().Log(mock.Anything, "/repo").Return(fakeLog(1), nil)
	store.EXPECT().SaveIndex(mock.Anything, mock.Anything).Return(errors.New("read-only"))

	_, err := NewIndexService(vcs).Rebuild(context.Background(), "/repo", store)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save commit index")
}
