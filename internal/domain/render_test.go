package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexWidth(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{100, 2},
		{101, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IndexWidth(tt.count), "count=%d", tt.count)
	}
}

func TestFormatEntry(t *testing.T) {
	idx := NewCommitIndex([]CommitRecord{{ID: "c0", Summary: "first"}})

	assert.Equal(t, "> 0: first", FormatEntry(idx, 0, true))
	assert.Equal(t, "  0: first", FormatEntry(idx, 0, false))
}

func TestRenderList_PadsIndexes(t *testing.T) {
	idx := indexOf(11)

	lines := RenderList(idx, intPtr(10))

	assert.Len(t, lines, 11)
	assert.Equal(t, "   0: summary 0", lines[0])
	assert.Equal(t, "   9: summary 9", lines[9])
	assert.Equal(t, "> 10: summary 10", lines[10])
}

func TestRenderList_NoCursor(t *testing.T) {
	lines := RenderList(indexOf(3), nil)

	assert.Equal(t, []string{"  0: summary 0", "  1: summary 1", "  2: summary 2"}, lines)
	for _, line := range lines {
		assert.NotContains(t, line, "> ")
	}
}

func TestRenderList_Empty(t *testing.T) {
	assert.Empty(t, RenderList(indexOf(0), nil))
}
