// Package errors provides structured error types for the hemicycle module.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (layout parameters, group specs)
//   - NOT_FOUND: Resource not found (stored diagrams)
//   - INTERNAL_*: Unexpected internal errors
//
// The codes INVALID_SEATS, INVALID_ANGLE, INVALID_RADIUS_RATIO and
// INVALID_GROUP form the configuration family reported by [IsConfiguration].
// They are raised at construction time and no partial object is produced.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSeats, "number of seats must be positive, got %d", n)
//	if errors.IsConfiguration(err) {
//	    // reject the request
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidSpec, origErr, "group %d", pos)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidSeats       Code = "INVALID_SEATS"
	ErrCodeInvalidAngle       Code = "INVALID_ANGLE"
	ErrCodeInvalidRadiusRatio Code = "INVALID_RADIUS_RATIO"
	ErrCodeInvalidGroup       Code = "INVALID_GROUP"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidSpec   Code = "INVALID_SPEC"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsConfiguration reports whether err belongs to the configuration family:
// invalid seat count, angle, radius ratio or group size interval.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidSeats, ErrCodeInvalidAngle, ErrCodeInvalidRadiusRatio, ErrCodeInvalidGroup:
		return true
	}
	return false
}

// IsInvalid reports whether err carries any INVALID_* code.
func IsInvalid(err error) bool {
	code := GetCode(err)
	return len(code) > len("INVALID_") && code[:len("INVALID_")] == "INVALID_"
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
