package branch

import (
	"errors"

	"github.com/mygit-vcs/mygit/pkg/common/err"
)

const pkgName = "branch"

// Package-specific error codes.
const (
	// CodeEmptyRepository indicates there is no commit to branch from.
	CodeEmptyRepository = "EMPTY_REPOSITORY"

	// CodeCurrentBranch indicates an operation targeted the checked-out branch.
	CodeCurrentBranch = "CURRENT_BRANCH"
)

// BranchError is raised for branch and merge failures: existing or
// missing branches, invalid names, deleting the current branch, and
// merges that are not fast-forwardable.
type BranchError struct {
	base *err.Error

	// Branch is the branch name involved.
	Branch string
}

// NewBranchError creates a BranchError.
func NewBranchError(code, op, message, branchName string, cause error) *BranchError {
	e := &BranchError{
		base:   err.New(pkgName, code, op, message, cause),
		Branch: branchName,
	}
	if branchName != "" {
		e.base.WithContext("branch", branchName)
	}
	return e
}

// Error implements the error interface.
func (e *BranchError) Error() string {
	return e.base.Error()
}

// Unwrap returns the underlying error.
func (e *BranchError) Unwrap() error {
	return e.base
}

// IsBranchError reports whether the error is (or wraps) a BranchError.
func IsBranchError(e error) bool {
	var be *BranchError
	return errors.As(e, &be)
}
