// Package errors provides structured errors with stable codes for dedup.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Scan and hashing errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileHash   ErrorCode = "FILE_HASH"

	// Mutation errors
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Path resolution errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"
)

// DedupError represents a structured error with code and details
type DedupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DedupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DedupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DedupError) Is(target error) bool {
	var targetErr *DedupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DedupError with the given code and message
func New(code ErrorCode, message string) *DedupError {
	return &DedupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DedupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DedupError {
	return &DedupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DedupError
func Wrap(err error, code ErrorCode, message string) *DedupError {
	if err == nil {
		return nil
	}
	return &DedupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DedupError {
	if err == nil {
		return nil
	}
	return &DedupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DedupError) WithDetail(key string, value interface{}) *DedupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dedupErr *DedupError
	if errors.As(err, &dedupErr) {
		return dedupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DedupError
func GetErrorCode(err error) ErrorCode {
	var dedupErr *DedupError
	if errors.As(err, &dedupErr) {
		return dedupErr.Code
	}
	return ErrUnknown
}
