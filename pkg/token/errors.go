package token

import (
	"errors"
	"fmt"
)

// Error is a token error carrying a structured error code.
type Error struct {
	Code    string // Error code (e.g., "TK-ARG-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *Error) WithDetailsf(format string, args ...any) *Error {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsError reports whether err is an *Error with the given code.
// An empty code matches any *Error.
func IsError(err error, code string) bool {
	var te *Error
	if errors.As(err, &te) {
		if code == "" {
			return true
		}
		return te.Code == code
	}
	return false
}

// ErrorCode extracts the error code from err, or "" if err is not an *Error.
func ErrorCode(err error) string {
	var te *Error
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

var (
	// ErrInvalidInput indicates a constructor or setter argument violates
	// its contract.
	ErrInvalidInput = NewError("TK-ARG-4001", "invalid input")

	// ErrGenerationFailure indicates the entropy source or range generator
	// could not produce a value.
	ErrGenerationFailure = NewError("TK-GEN-5001", "token generation failed")
)
