// Package errors provides the coded error type shared by the generator,
// renderers and CLI.
//
// Callers branch on the code rather than on message text:
//
//	branches, err := tree.ABT(p, src)
//	if errors.Is(err, errors.ErrCodeNonConvergence) {
//	    // the sampling model could not produce a valid vessel for these inputs
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// ErrCodeInvalidConfig marks generation parameters or configuration values
	// that violate a precondition. Generation never starts for these.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeNonConvergence marks a rejection-sampling loop that ran out of attempts.
	ErrCodeNonConvergence Code = "NON_CONVERGENCE"

	// ErrCodeInvalidFormat marks an unknown output format.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeIO marks failures reading configuration or writing output.
	ErrCodeIO Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// The outermost *Error in the chain decides.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
