package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/renato0307/gitwalk/internal/domain"
)

// validBranchNameChars matches the characters accepted in branch names
var validBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// validateBranchName checks a user-provided branch name before it is handed
// to checkout. Names must not look like options and must follow
// git-check-ref-format, restricted to alphanumerics, '.', '_', '-' and '/'.
func validateBranchName(name string) error {
	if reason := branchNameProblem(name); reason != "" {
		return fmt.Errorf("%w: %q %s", domain.ErrInvalidBranchName, name, reason)
	}
	return nil
}

func branchNameProblem(name string) string {
	if name == "" {
		return "is empty"
	}

	for _, prefix := range []string{".", "/", "-"} {
		if strings.HasPrefix(name, prefix) {
			return fmt.Sprintf("cannot start with '%s'", prefix)
		}
	}
	for _, suffix := range []string{".lock", ".", "/"} {
		if strings.HasSuffix(name, suffix) {
			return fmt.Sprintf("cannot end with '%s'", suffix)
		}
	}
	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return fmt.Sprintf("cannot contain '%s'", seq)
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return "cannot contain control characters"
		}
	}

	if !validBranchNameChars.MatchString(name) {
		return "contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)"
	}

	return ""
}
