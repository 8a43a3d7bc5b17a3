package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every package in the project.
// Package-specific error kinds (RepositoryError, ObjectError, IndexError,
// BranchError) embed it and add their own fields where needed.
type Error struct {
	// Package identifies the originating package (e.g., "store", "index")
	Package string

	// Code is a machine-readable error code for categorization.
	Code string

	// Op is the operation being performed when the error occurred,
	// e.g. "read_object", "add", "merge".
	Op string

	// Message provides brief human-readable context.
	Message string

	// Err is the underlying/wrapped error. Can be nil for leaf errors.
	Err error

	// Context holds optional structured metadata about the error.
	// Initialized lazily; use WithContext to add fields.
	Context map[string]any
}

// Error implements the error interface.
// Format: [package][code] operation: message: wrapped_error
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")

	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}

	return result
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code. Two errors match if both carry the same
// non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext adds a key-value pair to the error's context and returns
// the error for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new base error with the specified fields.
func New(pkg, code, op, message string, cause error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     cause,
	}
}

// Wrap wraps an error with package and operation context.
// Returns nil if cause is nil.
func Wrap(cause error, pkg, op string) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Op:      op,
		Err:     cause,
	}
}

// Standard error codes used across packages.
const (
	// CodeInvalidInput indicates invalid or malformed input parameters
	CodeInvalidInput = "INVALID_INPUT"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists when it shouldn't
	CodeAlreadyExists = "ALREADY_EXISTS"

	// CodeValidation indicates data validation failed
	CodeValidation = "VALIDATION"

	// CodeConflict indicates a conflict with current state
	CodeConflict = "CONFLICT"

	// CodeInvalidFormat indicates data is in an invalid format
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeUnsupported indicates the operation is not supported
	CodeUnsupported = "UNSUPPORTED"

	// CodeInternal indicates an unexpected internal error
	CodeInternal = "INTERNAL"
)

// IsCode checks if an error carries a specific code. Works through wrapping.
func IsCode(e error, code string) bool {
	var base *Error
	if errors.As(e, &base) {
		return base.Code == code
	}
	return false
}

// GetCode extracts the error code, or "" if the error is not a base Error.
func GetCode(e error) string {
	var base *Error
	if errors.As(e, &base) {
		return base.Code
	}
	return ""
}
