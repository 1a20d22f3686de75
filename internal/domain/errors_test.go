package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutError_Error(t *testing.T) {
	tests := []struct {
		name       string
		diagnostic string
		expected   string
	}{
		{
			name:       "single line kept verbatim",
			diagnostic: "error: pathspec 'nope' did not match any file(s) known to git",
			expected:   "error: pathspec 'nope' did not match any file(s) known to git",
		},
		{
			name: "multi-line diagnostic folded",
			diagnostic: "error: Your local changes to the following files would be overwritten by checkout:\n" +
				"\tfile.txt\n" +
				"Please commit your changes or stash them before you switch branches.\n" +
				"Aborting\n",
			expected: "error: Your local changes to the following files would be overwritten by checkout: " +
				"file.txt Please commit your changes or stash them before you switch branches. Aborting",
		},
		{
			name:       "empty diagnostic",
			diagnostic: "  \n",
			expected:   "checkout of abc123 failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CheckoutError{Treeish: "abc123", Diagnostic: tt.diagnostic}

			assert.Equal(t, tt.expected, err.Error())
			assert.ErrorIs(t, err, ErrCheckoutFailed)
		})
	}
}
