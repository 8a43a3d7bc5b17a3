package index

import (
	"errors"

	"github.com/mygit-vcs/mygit/pkg/common/err"
)

const pkgName = "index"

// IndexError is raised when staging fails: the file is missing, the path
// is a directory, or the path escapes the repository root.
type IndexError struct {
	base *err.Error

	// Path is the offending path, relative to the repository root when
	// resolvable.
	Path string
}

// NewIndexError creates an IndexError.
func NewIndexError(code, op, message, path string, cause error) *IndexError {
	e := &IndexError{
		base: err.New(pkgName, code, op, message, cause),
		Path: path,
	}
	if path != "" {
		e.base.WithContext("path", path)
	}
	return e
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return e.base.Error()
}

// Unwrap returns the underlying error.
func (e *IndexError) Unwrap() error {
	return e.base
}

// IsIndexError reports whether the error is (or wraps) an IndexError.
func IsIndexError(e error) bool {
	var ie *IndexError
	return errors.As(e, &ie)
}
