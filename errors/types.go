package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Hook repository errors
	ErrCodeManifestInvalid ErrorCode = "MANIFEST_INVALID"
	ErrCodeHookNotFound    ErrorCode = "HOOK_NOT_FOUND"
	ErrCodeHookFailed      ErrorCode = "HOOK_FAILED"
	ErrCodeRepoCloneFailed ErrorCode = "REPO_CLONE_FAILED"
	ErrCodeRevNotFound     ErrorCode = "REV_NOT_FOUND"

	// Command execution errors
	ErrCodeCommandTimeout  ErrorCode = "COMMAND_TIMEOUT"
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"

	// Git errors
	ErrCodeGitNotInstalled ErrorCode = "GIT_NOT_INSTALLED"
	ErrCodeNotARepository  ErrorCode = "NOT_A_REPOSITORY"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// HooksError represents a structured error with context
type HooksError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HooksError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HooksError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *HooksError) WithDetail(key string, value interface{}) *HooksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *HooksError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new HooksError
func New(code ErrorCode, message string) *HooksError {
	return &HooksError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HooksError
func Wrap(err error, code ErrorCode, message string) *HooksError {
	return &HooksError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific HooksError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	hooksErr, ok := err.(*HooksError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return hooksErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	hooksErr, ok := err.(*HooksError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return hooksErr.Code
}
