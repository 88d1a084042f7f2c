package errors

import (
	"fmt"
	"testing"
)

func TestHooksError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeHookNotFound, "hook not found")
	if err.Code != ErrCodeHookNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHookNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeHookFailed, "hook failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeHookFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeHookNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("hook", "flake8").WithDetail("repo", "https://example.com/hooks")
	if detailed.Details["hook"] != "flake8" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test HookNotFound
	err := HookNotFound("black", "https://github.com/psf/black")
	if err.Code != ErrCodeHookNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHookNotFound, err.Code)
	}
	if err.Details["hook"] != "black" {
		t.Error("HookNotFound should include hook detail")
	}

	// Test RevNotFound
	err = RevNotFound("https://github.com/psf/black", "19.10b0")
	if err.Code != ErrCodeRevNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRevNotFound, err.Code)
	}
	if err.Details["rev"] != "19.10b0" {
		t.Error("RevNotFound should include rev detail")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should return empty code")
	}

	err := ConfigNotFound("/tmp/project")
	if GetCode(err) != ErrCodeConfigNotFound {
		t.Errorf("expected %s, got %s", ErrCodeConfigNotFound, GetCode(err))
	}

	// Wrapped in a plain fmt error
	wrapped := fmt.Errorf("loading: %w", err)
	if GetCode(wrapped) != ErrCodeConfigNotFound {
		t.Error("GetCode should unwrap plain wrapped errors")
	}
}
