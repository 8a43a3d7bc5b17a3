package branch

import (
	"strings"

	"github.com/mygit-vcs/mygit/pkg/common/err"
)

// forbiddenSequences are substrings that make a branch name unusable as a
// ref file path. Slashes are rejected outright: branches live as flat files
// directly under refs/heads/.
var forbiddenSequences = []string{" ", "~", "^", ":", "?", "*", "[", "\\", "..", "@{", "/"}

// ValidateName checks a branch name against the ref charset rules.
func ValidateName(name string) error {
	const op = "validate_name"

	if name == "" {
		return NewBranchError(err.CodeValidation, op, "branch name cannot be empty", name, nil)
	}

	for _, seq := range forbiddenSequences {
		if strings.Contains(name, seq) {
			return NewBranchError(err.CodeValidation, op, "invalid characters in branch name", name, nil)
		}
	}

	if strings.HasPrefix(name, ".") {
		return NewBranchError(err.CodeValidation, op, "branch name cannot start with '.'", name, nil)
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock") {
		return NewBranchError(err.CodeValidation, op, "invalid branch name suffix", name, nil)
	}

	for _, c := range name {
		if c < 0x20 || c == 0x7f {
			return NewBranchError(err.CodeValidation, op, "control characters in branch name", name, nil)
		}
	}

	return nil
}
