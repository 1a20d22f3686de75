package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeCommitLog = `commit ccc333 (HEAD -> main)
Author: Test <test@test.com>
Date:   Mon Jan 3 10:00:00 2022 +0000

    Third commit

    With a body paragraph.

commit bbb222
Merge: aaa111 999fff
Author: Test <test@test.com>
Date:   Sun Jan 2 10:00:00 2022 +0000

    Second commit

commit aaa111
Author: Test <test@test.com>
Date:   Sat Jan 1 10:00:00 2022 +0000

    Initial commit
`

func TestParseLog_ReversesToOldestFirst(t *testing.T) {
	records, err := ParseLog(threeCommitLog)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, CommitRecord{ID: "aaa111", Summary: "Initial commit"}, records[0])
	assert.Equal(t, CommitRecord{ID: "bbb222", Summary: "Second commit"}, records[1])
	assert.Equal(t, CommitRecord{ID: "ccc333", Summary: "Third commit"}, records[2])
}

func TestParseLog_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "\n\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseLog(tt.input)
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestParseLog_BlockCountMatchesInput(t *testing.T) {
	var sb strings.Builder
	for i := 9; i >= 0; i-- {
		sb.WriteString("commit ")
		sb.WriteString(strings.Repeat(string(rune('a'+i)), 8))
		sb.WriteString("\nAuthor: T <t@t>\n\n    message ")
		sb.WriteString(string(rune('0' + i)))
		sb.WriteString("\n\n")
	}

	records, err := ParseLog(sb.String())

	require.NoError(t, err)
	require.Len(t, records, 10)
	assert.Equal(t, "message 0", records[0].Summary)
	assert.Equal(t, "message 9", records[9].Summary)
}

func TestParseLog_IndentedCommitWordIsNotAHeader(t *testing.T) {
	log := "commit abc\nAuthor: T <t@t>\n\n    Revert thing\n\n    commit def was wrong\n"

	records, err := ParseLog(log)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Revert thing", records[0].Summary)
}

func TestParseLog_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no blank line", "commit abc\nAuthor: T <t@t>\n"},
		{"nothing after blank line", "commit abc\nAuthor: T <t@t>\n\n\n"},
		{"header without identifier", "commit \nAuthor: T <t@t>\n\n    msg\n"},
		{"text before first header", "garbage\ncommit abc\n\n    msg\n"},
		{"second block broken", "commit abc\n\n    ok\ncommit def\nAuthor: T\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseLog(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLog)
			assert.Nil(t, records)
		})
	}
}

func TestCommitIndex_Bounds(t *testing.T) {
	empty := NewCommitIndex(nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, -1, empty.LastIndex())

	idx := NewCommitIndex([]CommitRecord{{ID: "a"}, {ID: "b"}})
	assert.False(t, idx.IsEmpty())
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 1, idx.LastIndex())
	assert.Equal(t, "b", idx.At(1).ID)
}
