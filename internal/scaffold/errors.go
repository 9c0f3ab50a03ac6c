package scaffold

import "fmt"

// ErrorKind categorizes materializer errors per the failure taxonomy:
// precondition and copy failures abort before/while populating the
// destination, substitution failures only occur in strict token mode, and
// a missing component directory aborts variant resolution.
type ErrorKind int

const (
	// ErrPrecondition indicates the destination already exists or the
	// selected framework has no template subtree.
	ErrPrecondition ErrorKind = iota
	// ErrCopy indicates the recursive template copy failed.
	ErrCopy
	// ErrSubstitution indicates token substitution failed (strict mode).
	ErrSubstitution
	// ErrComponentDir indicates the component directory is missing after
	// the base copy.
	ErrComponentDir
)

// Error represents a materializer error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind
	// Message is the error message.
	Message string
	// Path is the file or directory related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a new materializer Error.
func newError(kind ErrorKind, message, path string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
