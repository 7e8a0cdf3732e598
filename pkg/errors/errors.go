// Package errors provides structured error types for hexglyph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the batch adapter and the HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Parse failures carry one of the notation codes:
//   - MALFORMED_TOKEN: a token has no action letter, or text after it
//   - INVALID_DIRECTION: a path contains an unknown direction character
//   - INVALID_DISTANCE: a step distance is zero or a path is too long
//   - ORIGIN_TARGET: a token walks back onto the origin cell
//
// INTERNAL_PATH_MISMATCH signals a broken walker invariant and never
// results from user input.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedToken, "no action letter in token %q of %q", tok, spec)
//	if errors.Is(err, errors.ErrCodeMalformedToken) {
//	    // skip this spec
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "encode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Notation errors
	ErrCodeMalformedToken   Code = "MALFORMED_TOKEN"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidDistance  Code = "INVALID_DISTANCE"
	ErrCodeOriginTarget     Code = "ORIGIN_TARGET"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal             Code = "INTERNAL_ERROR"
	ErrCodeInternalPathMismatch Code = "INTERNAL_PATH_MISMATCH"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotation reports whether err is a user-facing parse failure, as opposed
// to an I/O or internal error. Batch callers skip specs that fail this way.
func IsNotation(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedToken, ErrCodeInvalidDirection, ErrCodeInvalidDistance, ErrCodeOriginTarget:
		return true
	}
	return false
}
