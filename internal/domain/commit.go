package domain

import (
	"bufio"
	"slices"
	"strings"
)

// StoreKeyCommits and StoreKeyCursor are the logical keys of the per-repository store
const (
	StoreKeyCommits = "commits"
	StoreKeyCursor  = "cursor"
)

// CommitRecord is one commit captured from the log
type CommitRecord struct {
	ID      string `json:"identifier"`
	Summary string `json:"summary"`
}

// CommitIndex is the ordered commit tape. Entries[0] is the oldest commit.
type CommitIndex struct {
	Entries []CommitRecord
}

// NewCommitIndex wraps entries that are already in oldest-first order
func NewCommitIndex(entries []CommitRecord) CommitIndex {
	return CommitIndex{Entries: entries}
}

// Len returns the number of commits in the index
func (c CommitIndex) Len() int {
	return len(c.Entries)
}

// IsEmpty reports whether the history has no commits
func (c CommitIndex) IsEmpty() bool {
	return len(c.Entries) == 0
}

// LastIndex returns the index of the newest commit, -1 when empty
func (c CommitIndex) LastIndex() int {
	return len(c.Entries) - 1
}

// At returns the record at position i. Callers bounds-check first.
func (c CommitIndex) At(i int) CommitRecord {
	return c.Entries[i]
}

// ParseLog turns newest-first `git log` output into oldest-first records.
//
// Each block starts with a line "commit <id> ...". The summary is the first
// non-empty line after the first empty line of the block. A block that does
// not have that shape fails the whole parse.
func ParseLog(text string) ([]CommitRecord, error) {
	var blocks [][]string
	var current []string

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "commit ") {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current == nil {
			if strings.TrimSpace(line) != "" {
				return nil, &MalformedLogError{Block: 0, Reason: "text before first commit header"}
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	records := make([]CommitRecord, 0, len(blocks))
	for i, block := range blocks {
		record, err := parseBlock(block)
		if err != nil {
			return nil, &MalformedLogError{Block: i, Reason: err.Error()}
		}
		records = append(records, record)
	}

	slices.Reverse(records)
	return records, nil
}

type blockError string

func (e blockError) Error() string { return string(e) }

func parseBlock(lines []string) (CommitRecord, error) {
	fields := strings.Fields(lines[0])
	if len(fields) < 2 {
		return CommitRecord{}, blockError("commit header has no identifier")
	}

	blank := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			blank = i
			break
		}
	}
	if blank < 0 {
		return CommitRecord{}, blockError("no blank line after header of " + fields[1])
	}

	for _, line := range lines[blank+1:] {
		if summary := strings.TrimSpace(line); summary != "" {
			return CommitRecord{ID: fields[1], Summary: summary}, nil
		}
	}
	return CommitRecord{}, blockError("no message for " + fields[1])
}
