// Package errors provides structured error types for mindloom.
//
// This package defines error codes and types that enable:
//   - Consistent failure routing between the mediator and the lifecycle
//     controller (failures become events, never panics)
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages for error dialogs
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes map to the recoverable failures the editor can surface:
//   - OPEN_FAILED / SAVE_FAILED / EXPORT_FAILED: document I/O failures
//   - INVALID_PATH: a path that cannot name a document
//   - SNAPSHOT_FAILED: the autosave snapshot store misbehaved
//   - INTERNAL_ERROR: unexpected internal conditions
//
// Dialog cancellation is deliberately not an error code; it is a lifecycle
// event and never travels through this package.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeSaveFailed, cause, "save %s", path)
//	if errors.Is(err, errors.ErrCodeSaveFailed) {
//	    // show message, return to edit state
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the editor's recoverable failure categories.
const (
	ErrCodeOpenFailed     Code = "OPEN_FAILED"
	ErrCodeSaveFailed     Code = "SAVE_FAILED"
	ErrCodeExportFailed   Code = "EXPORT_FAILED"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeSnapshotFailed Code = "SNAPSHOT_FAILED"
	ErrCodeInternal       Code = "INTERNAL_ERROR"
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
