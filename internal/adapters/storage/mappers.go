package storage

import (
	"fmt"

	"github.com/renato0307/gitwalk/internal/domain"
)

// commitModelsToDomain converts rows ordered by position into a CommitIndex.
// Positions must be contiguous from zero.
func commitModelsToDomain(models []CommitModel) (domain.CommitIndex, error) {
	entries := make([]domain.CommitRecord, len(models))
	for i, m := range models {
		if m.Position != i {
			return domain.CommitIndex{}, fmt.Errorf("commit positions are not contiguous: expected %d, found %d", i, m.Position)
		}
		entries[i] = domain.CommitRecord{ID: m.Identifier, Summary: m.Summary}
	}
	return domain.NewCommitIndex(entries), nil
}

// domainToCommitModels converts a CommitIndex into rows keyed by position
func domainToCommitModels(idx domain.CommitIndex) []CommitModel {
	models := make([]CommitModel, idx.Len())
	for i, e := range idx.Entries {
		models[i] = CommitModel{Identifier: e.ID, Position: i, Summary: e.Summary}
	}
	return models
}
