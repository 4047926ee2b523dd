package token

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without details",
			err:      NewError("TK-TEST-1000", "test message"),
			expected: "[TK-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewError("TK-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[TK-TEST-1001] test message: extra info",
		},
		{
			name:     "error with details and cause",
			err:      NewError("TK-TEST-1002", "test message").WithDetails("extra").WithCause(fmt.Errorf("boom")),
			expected: "[TK-TEST-1002] test message: extra: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err1 := NewError("TK-TEST-1000", "message 1")
	err2 := NewError("TK-TEST-1000", "message 2") // Same code, different message
	err3 := NewError("TK-TEST-1001", "message 1") // Different code

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-token error")
	}

	wrapped := fmt.Errorf("outer: %w", ErrInvalidInput.WithDetails("x"))
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewError("TK-TEST-1000", "wrapper").WithCause(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := NewError("TK-TEST-1000", "no cause")
	if errors.Unwrap(errNoCause) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestError_WithDetailsDoesNotMutate(t *testing.T) {
	original := NewError("TK-TEST-1000", "original message")
	withDetails := original.WithDetailsf("count=%d", 3)

	if original.Details != "" {
		t.Error("WithDetails should not modify original error")
	}
	if withDetails.Details != "count=3" {
		t.Errorf("Details = %q, want %q", withDetails.Details, "count=3")
	}
	if withDetails.Code != original.Code {
		t.Error("WithDetails should keep the code")
	}
}

func TestIsError(t *testing.T) {
	err := ErrGenerationFailure.WithDetails("x")

	if !IsError(err, "") {
		t.Error("IsError(err, \"\") should be true for token errors")
	}
	if !IsError(err, ErrGenerationFailure.Code) {
		t.Error("IsError should match code")
	}
	if IsError(err, ErrInvalidInput.Code) {
		t.Error("IsError should not match other codes")
	}
	if IsError(fmt.Errorf("plain"), "") {
		t.Error("IsError should be false for plain errors")
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(ErrInvalidInput); got != "TK-ARG-4001" {
		t.Errorf("ErrorCode() = %q, want TK-ARG-4001", got)
	}
	if got := ErrorCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("ErrorCode() = %q, want empty", got)
	}
}
