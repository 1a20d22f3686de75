package domain

import "fmt"

// ResolutionKind discriminates Resolution
type ResolutionKind int

const (
	ResolvedError ResolutionKind = iota
	ResolvedIndex
	ResolvedBranch
)

// Resolution is the outcome of resolving a move directive
type Resolution struct {
	Kind   ResolutionKind
	Index  int
	Branch string
	Err    error
}

func TargetIndex(i int) Resolution {
	return Resolution{Kind: ResolvedIndex, Index: i}
}

func BranchTarget(name string) Resolution {
	return Resolution{Kind: ResolvedBranch, Branch: name}
}

func ResolutionError(err error) Resolution {
	return Resolution{Kind: ResolvedError, Err: err}
}

// Resolve maps a move directive to a target using only the index and cursor.
// It has no side effects. A nil cursor means no commit is pointed to.
func Resolve(d Directive, idx CommitIndex, cursor *int) Resolution {
	switch d.Kind {
	case DirectiveBranch:
		return BranchTarget(d.Branch)
	case DirectiveStart:
		return withinBounds(idx, 0)
	case DirectiveEnd:
		return withinBounds(idx, idx.LastIndex())
	case DirectiveNext:
		return withinBounds(idx, cursorOr(cursor, -1)+1)
	case DirectivePrev:
		return withinBounds(idx, cursorOr(cursor, 1)-1)
	case DirectiveIndex:
		return withinBounds(idx, d.Index)
	}
	return ResolutionError(fmt.Errorf("%s is not a move", d.Kind))
}

func withinBounds(idx CommitIndex, target int) Resolution {
	if idx.IsEmpty() {
		return ResolutionError(ErrEmptyHistory)
	}
	if target < 0 {
		return ResolutionError(&IndexError{Index: target, Low: true})
	}
	if target > idx.LastIndex() {
		return ResolutionError(&IndexError{Index: target})
	}
	return TargetIndex(target)
}

func cursorOr(cursor *int, def int) int {
	if cursor == nil {
		return def
	}
	return *cursor
}
