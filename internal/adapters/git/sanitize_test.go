package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwalk/internal/domain"
)

func TestValidateBranchName_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "empty"},
		{"starts with hyphen", "--orphan", "start with '-'"},
		{"starts with dot", ".hidden", "start with '.'"},
		{"starts with slash", "/path", "start with '/'"},
		{"ends with .lock", "branch.lock", "'.lock'"},
		{"ends with slash", "branch/", "end with '/'"},
		{"double dot", "a..b", "'..'"},
		{"double slash", "a//b", "'//'"},
		{"reflog syntax", "main@{1}", "'@{'"},
		{"control character", "feat\x00ure", "control characters"},
		{"space", "my branch", "invalid characters"},
		{"shell metacharacter", "a;rm", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateBranchName_Accepted(t *testing.T) {
	for _, name := range []string{"main", "master", "feature/login", "release-1.2", "user_branch", "v2.0.0"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, validateBranchName(name))
		})
	}
}
