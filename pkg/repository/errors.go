package repository

import (
	"errors"

	"github.com/mygit-vcs/mygit/pkg/common/err"
)

const pkgName = "repository"

// RepositoryError is raised when the repository is not initialized or the
// repository path fails validation.
type RepositoryError struct {
	base *err.Error

	// Root is the repository root path involved.
	Root string
}

// NewRepositoryError creates a RepositoryError.
func NewRepositoryError(code, op, message, root string, cause error) *RepositoryError {
	e := &RepositoryError{
		base: err.New(pkgName, code, op, message, cause),
		Root: root,
	}
	if root != "" {
		e.base.WithContext("root", root)
	}
	return e
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	return e.base.Error()
}

// Unwrap returns the underlying error.
func (e *RepositoryError) Unwrap() error {
	return e.base
}

// IsRepositoryError reports whether the error is (or wraps) a RepositoryError.
func IsRepositoryError(e error) bool {
	var re *RepositoryError
	return errors.As(e, &re)
}
