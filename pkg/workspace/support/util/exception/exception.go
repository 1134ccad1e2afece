// Package exception provides the error types used across the workspace packages.
// ResolutionError reports a named export that a module could not supply;
// WorkspaceError covers configuration and output failures.
package exception

import (
	"errors"
	"fmt"
	"runtime"
)

// ResolutionError is returned when a module does not export a value another module requires.
// It is raised at load time, before the importing module produces any side effect.
type ResolutionError struct {
	// Module is the name of the module that was expected to export the value (e.g., "package_a").
	Module string
	// Name is the export that could not be found (e.g., "superCool").
	Name string
	// OriginalErr is the underlying cause, if any.
	OriginalErr error
	// StackTrace is the stack at the point the error was created (for debugging).
	StackTrace string
}

// NewResolutionError creates a new ResolutionError for the named export of module.
func NewResolutionError(module, name string, originalErr error) *ResolutionError {
	return &ResolutionError{
		Module:      module,
		Name:        name,
		OriginalErr: originalErr,
		StackTrace:  captureStack(),
	}
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("ResolutionError: module '%s' does not export '%s'", e.Module, e.Name)
	if e.OriginalErr != nil {
		msg += fmt.Sprintf(": %v", e.OriginalErr)
	}
	return msg
}

// Unwrap returns the wrapped original error.
func (e *ResolutionError) Unwrap() error {
	return e.OriginalErr
}

// IsResolutionError reports whether err or any error in its chain is a ResolutionError.
func IsResolutionError(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}

// WorkspaceError is a general error raised by a workspace component.
type WorkspaceError struct {
	// Module indicates where the error occurred (e.g., "config", "app_a").
	Module string
	// Message is a concise description of the error.
	Message string
	// OriginalErr is the wrapped original error.
	OriginalErr error
}

// NewWorkspaceError creates a new WorkspaceError.
func NewWorkspaceError(module, message string, originalErr error) *WorkspaceError {
	return &WorkspaceError{
		Module:      module,
		Message:     message,
		OriginalErr: originalErr,
	}
}

// NewWorkspaceErrorf creates a new WorkspaceError with a formatted message.
// If the last argument is an error, it becomes the wrapped original error.
func NewWorkspaceErrorf(module, format string, a ...interface{}) *WorkspaceError {
	var originalErr error
	args := a
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			originalErr = err
			args = args[:len(args)-1]
		}
	}
	return NewWorkspaceError(module, fmt.Sprintf(format, args...), originalErr)
}

// Error implements the error interface.
func (e *WorkspaceError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Module, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("[%s] %s", e.Module, e.Message)
}

// Unwrap returns the wrapped original error.
func (e *WorkspaceError) Unwrap() error {
	return e.OriginalErr
}

func captureStack() string {
	buf := make([]byte, 2048)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
