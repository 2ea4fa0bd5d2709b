// Package errors provides structured error types for the gitroast application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-facing messages that never leak upstream detail
//   - Error wrapping with context preservation
//
// # Failure Classes
//
// Three classes of failure exist in the comparison pipeline:
//   - Hard failures (identity fetch, calendar query, zero surviving roasts)
//     abort the whole operation. They are wrapped with [Wrap] using a generic
//     message; the cause is kept for logs only.
//   - Isolated per-repository failures are logged and defaulted to zero by
//     the aggregators. They never reach this package.
//   - Malformed roast blocks are dropped by the parser and logged.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeFetchFailed, cause, MsgFetchFailed)
//	if errors.Is(err, errors.ErrCodeFetchFailed) {
//	    http.Error(w, errors.UserMessage(err), http.StatusBadGateway)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidUsername Code = "INVALID_USERNAME"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeUserNotFound Code = "USER_NOT_FOUND"

	// Upstream errors
	ErrCodeNetwork          Code = "NETWORK_ERROR"
	ErrCodeFetchFailed      Code = "FETCH_FAILED"
	ErrCodeCalendarInvalid  Code = "CALENDAR_INVALID"
	ErrCodeGenerationFailed Code = "GENERATION_FAILED"
	ErrCodeNoValidRoasts    Code = "NO_VALID_ROASTS"
	ErrCodeRateLimited      Code = "RATE_LIMITED"

	// Configuration errors
	ErrCodeConfig Code = "CONFIG_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Generic messages surfaced to end users for hard failures.
const (
	MsgFetchFailed      = "Failed to fetch GitHub data"
	MsgCompareFailed    = "Failed to generate comparison"
	MsgNoValidRoasts    = "Failed to generate valid roasts"
	MsgInvalidUsernames = "Please enter two valid GitHub usernames"
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

// GetCode extracts the error code from an error, if available. An *Error
// in the chain wins; a bare *RateLimitedError reports its own code.
// Returns empty string otherwise.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message of the outermost *Error without the
// code prefix or cause. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RateLimitedError provides additional information for rate-limited responses.
type RateLimitedError struct {
	RetryAfter int // Seconds until the upstream limit resets
	Message    string
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
