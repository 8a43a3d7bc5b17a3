package store

import (
	"errors"

	"github.com/mygit-vcs/mygit/pkg/common/err"
)

const pkgName = "store"

// ObjectError is raised for all object-store failures: unsupported object
// type, malformed hash, missing object, or a size mismatch on read.
type ObjectError struct {
	base *err.Error

	// Hash is the offending object hash, when applicable.
	Hash string
}

// NewObjectError creates an ObjectError.
func NewObjectError(code, op, message, hash string, cause error) *ObjectError {
	e := &ObjectError{
		base: err.New(pkgName, code, op, message, cause),
		Hash: hash,
	}
	if hash != "" {
		e.base.WithContext("hash", hash)
	}
	return e
}

// Error implements the error interface.
func (e *ObjectError) Error() string {
	return e.base.Error()
}

// Unwrap returns the underlying error.
func (e *ObjectError) Unwrap() error {
	return e.base
}

// IsObjectError reports whether the error is (or wraps) an ObjectError.
func IsObjectError(e error) bool {
	var oe *ObjectError
	return errors.As(e, &oe)
}
