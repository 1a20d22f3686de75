package domain

import (
	"fmt"
	"strconv"
)

// IndexWidth is the digit count of the largest index in the tape
func IndexWidth(n int) int {
	if n <= 1 {
		return 1
	}
	return len(strconv.Itoa(n - 1))
}

// FormatEntry renders one tape line: "> 3: summary" for the cursor entry,
// "  3: summary" otherwise, with the index right-justified to width.
func FormatEntry(idx CommitIndex, i int, current bool) string {
	prefix := "  "
	if current {
		prefix = "> "
	}
	return fmt.Sprintf("%s%*d: %s", prefix, IndexWidth(idx.Len()), i, idx.At(i).Summary)
}

// RenderList returns every entry oldest first, marking the cursor entry
func RenderList(idx CommitIndex, cursor *int) []string {
	lines := make([]string, 0, idx.Len())
	for i := range idx.Entries {
		lines = append(lines, FormatEntry(idx, i, cursor != nil && *cursor == i))
	}
	return lines
}
