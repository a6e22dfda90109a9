// Package apperr defines the error kinds returned to API callers.
//
// Callers branch on Code, never on the message text.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeForbidden  Code = "FORBIDDEN"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Error is a failure with a kind, a human readable message and optional
// structured details (e.g. the expected and computed totals of a split).
type Error struct {
	Code    Code
	Message string
	Details map[string]any

	// Err is the underlying cause. It is logged, never shown to callers.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed, missing or inconsistent input.
func Validation(message string, details map[string]any) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// NotFound reports a missing group, member, split or notification.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Forbidden reports that the caller lacks the required role.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

// Internal wraps a persistence or other unexpected failure.
func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// CodeOf returns the Code of the first *Error in err's chain, or
// CodeInternal for any other non-nil error. It returns "" for nil.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
