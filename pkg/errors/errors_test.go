package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "configurator type not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "configurator type not found" {
		t.Errorf("expected message 'configurator type not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInstantiationFailure, "constructor failed", cause)

	if err.Code != ErrCodeInstantiationFailure {
		t.Errorf("expected code %s, got %s", ErrCodeInstantiationFailure, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no such file")
	ctx := map[string]any{
		"variable": "ECHOLOCATOR_CONFIGFILE",
		"path":     "/etc/app/conf.yaml",
	}

	err := WrapWithContext(ErrCodeEnvironmentMisconfiguration, "config file missing", cause, ctx)

	if err.Code != ErrCodeEnvironmentMisconfiguration {
		t.Errorf("expected code %s, got %s", ErrCodeEnvironmentMisconfiguration, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "/etc/app/conf.yaml" {
		t.Errorf("expected path to be /etc/app/conf.yaml")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeMissingRequiredField, "type is required")
	outer := Wrap(ErrCodeInstantiationFailure, "constructor failed", inner)
	plain := fmt.Errorf("building: %w", outer)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{name: "nil error", err: nil, code: ErrCodeInternal, want: false},
		{name: "plain error", err: errors.New("boom"), code: ErrCodeInternal, want: false},
		{name: "outer code", err: outer, code: ErrCodeInstantiationFailure, want: true},
		{name: "inner code", err: outer, code: ErrCodeMissingRequiredField, want: true},
		{name: "through fmt wrap", err: plain, code: ErrCodeMissingRequiredField, want: true},
		{name: "absent code", err: outer, code: ErrCodeNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %s", got)
	}
	err := fmt.Errorf("wrapped: %w", New(ErrCodeUninitializedDefault, "unset"))
	if got := CodeOf(err); got != ErrCodeUninitializedDefault {
		t.Errorf("expected %s, got %s", ErrCodeUninitializedDefault, got)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeMissingRequiredField,
		ErrCodeInstantiationFailure,
		ErrCodeEnvironmentMisconfiguration,
		ErrCodeUninitializedDefault,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
