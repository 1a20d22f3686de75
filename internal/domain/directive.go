package domain

import "fmt"

// DirectiveKind identifies the action requested for one invocation
type DirectiveKind int

const (
	DirectiveList DirectiveKind = iota
	DirectiveStart
	DirectiveEnd
	DirectiveNext
	DirectivePrev
	DirectiveIndex
	DirectiveBranch
	DirectiveReset
)

func (k DirectiveKind) String() string {
	switch k {
	case DirectiveList:
		return "list"
	case DirectiveStart:
		return "start"
	case DirectiveEnd:
		return "end"
	case DirectiveNext:
		return "next"
	case DirectivePrev:
		return "prev"
	case DirectiveIndex:
		return "index"
	case DirectiveBranch:
		return "branch"
	case DirectiveReset:
		return "reset"
	}
	return fmt.Sprintf("directive(%d)", int(k))
}

// Directive is a single navigation or maintenance action.
// Index is set for DirectiveIndex, Branch for DirectiveBranch.
type Directive struct {
	Kind   DirectiveKind
	Index  int
	Branch string
}

func List() Directive  { return Directive{Kind: DirectiveList} }
func Start() Directive { return Directive{Kind: DirectiveStart} }
func End() Directive   { return Directive{Kind: DirectiveEnd} }
func Next() Directive  { return Directive{Kind: DirectiveNext} }
func Prev() Directive  { return Directive{Kind: DirectivePrev} }
func Reset() Directive { return Directive{Kind: DirectiveReset} }

// AbsoluteIndex targets commit n directly
func AbsoluteIndex(n int) Directive {
	return Directive{Kind: DirectiveIndex, Index: n}
}

// BranchName checks out a branch without touching the cursor
func BranchName(name string) Directive {
	return Directive{Kind: DirectiveBranch, Branch: name}
}

// IsMove reports whether the directive resolves to a checkout
func (d Directive) IsMove() bool {
	return d.Kind != DirectiveList && d.Kind != DirectiveReset
}
