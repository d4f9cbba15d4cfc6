// Package errors provides standardized error handling for shareview.
// It defines the error kinds the UI dispatches on (listing failures,
// mount problems, launch and render failures) and helpers for consistent
// creation, wrapping and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience.
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error.
type ErrorKind int

// Error kinds. The UI maps each kind to a distinct recovery path: NotFound
// re-enters the connection flow, AccessDenied shows a modal, launch and
// render failures name a remedy.
const (
	Unknown ErrorKind = iota
	// Listing error kinds
	AccessDenied
	NotFound
	// Share connection error kinds
	MountHelperMissing
	MountTimeout
	// Playback error kinds
	LaunchFailed
	// Viewer error kinds
	RenderFailed
	// Config error kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors.
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message.
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error.
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error.
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError represents errors tied to a filesystem path.
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error.
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message.
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error.
func (e *PathError) Path() string {
	return e.path
}

// New creates a new error with a message and kind.
func New(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Newf creates a new error with a formatted message.
func Newf(kind ErrorKind, format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: kindOf(err),
	}
}

// kindOf recovers the kind from anywhere in the chain, so wrapping
// preserves classification.
func kindOf(err error) ErrorKind {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.kind
	}
	return Unknown
}

// KindOf returns the classified kind of err, or Unknown.
func KindOf(err error) ErrorKind {
	return kindOf(err)
}

// IsNotFound reports whether the error classifies as a missing or
// disconnected path.
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsAccessDenied reports whether the error classifies as a permission failure.
func IsAccessDenied(err error) bool {
	return kindOf(err) == AccessDenied
}

// IsMountHelperMissing reports whether the mount helper binary is absent.
func IsMountHelperMissing(err error) bool {
	return kindOf(err) == MountHelperMissing
}

// IsMountTimeout reports whether a mount attempt timed out.
func IsMountTimeout(err error) bool {
	return kindOf(err) == MountTimeout
}

// IsLaunchFailed reports whether no external program could be started.
func IsLaunchFailed(err error) bool {
	return kindOf(err) == LaunchFailed
}

// IsRenderFailed reports whether a viewer source could not be rendered.
func IsRenderFailed(err error) bool {
	return kindOf(err) == RenderFailed
}
