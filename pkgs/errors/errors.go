// Package errors defines fsh's error taxonomy: every fallible operation in
// the shell returns a *Error carrying a Kind and a message instead of a bare
// error string, so the REPL and the pre-exec redirection path can branch on
// *what kind* of failure happened without string matching.
package errors

import "fmt"

// Kind classifies a failure so callers can branch on it without string
// matching the message.
type Kind int

const (
	Other Kind = iota
	NotFound
	NotADirectory
	NotAFile
	PermissionDenied
	InvalidInput
	InvalidSyntax
	Interrupted
	BrokenPipe
	AlreadyExists
	Internal
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotADirectory:
		return "not a directory"
	case NotAFile:
		return "not a file"
	case PermissionDenied:
		return "permission denied"
	case InvalidInput:
		return "invalid input"
	case InvalidSyntax:
		return "invalid syntax"
	case Interrupted:
		return "interrupted"
	case BrokenPipe:
		return "broken pipe"
	case AlreadyExists:
		return "already exists"
	case Internal:
		return "internal"
	default:
		return "other"
	}
}

// Error is fsh's structured error: a Kind, a human-readable Message, and an
// optional wrapped Cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is/errors.As to see through to Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with a wrapped cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	return ok && fe.Kind == kind
}

// KindOf returns the Kind of err, or Other if err is not an *Error.
func KindOf(err error) Kind {
	if fe, ok := err.(*Error); ok {
		return fe.Kind
	}
	return Other
}
