package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to render")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestAtLine(t *testing.T) {
	base := New(ErrCodeUnknownNode, "unknown node %q", "Z")
	err := AtLine(base, 3)

	if got := GetLine(err); got != 3 {
		t.Errorf("GetLine() = %d, want 3", got)
	}
	if got := GetCode(err); got != ErrCodeUnknownNode {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownNode)
	}
	if base.Line != 0 {
		t.Errorf("AtLine mutated the original error")
	}

	want := `UNKNOWN_NODE: line 3: unknown node "Z"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := AtLine(errors.New("boom"), 7)
	if GetCode(plain) != ErrCodeInvalidLine || GetLine(plain) != 7 {
		t.Errorf("plain error: code=%v line=%d", GetCode(plain), GetLine(plain))
	}

	if AtLine(nil, 1) != nil {
		t.Error("AtLine(nil) should be nil")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown node", New(ErrCodeUnknownNode, "x"), true},
		{"bad value", New(ErrCodeInvalidValue, "x"), true},
		{"bad line", AtLine(errors.New("x"), 2), true},
		{"internal", New(ErrCodeInternal, "x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"structured", New(ErrCodeInvalidValue, "value must be a finite number"), "value must be a finite number"},
		{"with line", AtLine(New(ErrCodeInvalidLine, "expected 3 fields, got 2"), 5), "line 5: expected 3 fields, got 2"},
		{"plain", errors.New("plain error message"), "plain error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}
