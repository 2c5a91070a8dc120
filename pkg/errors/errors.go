package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnsupported  ErrorCode = "UNSUPPORTED"
	ErrCancelled    ErrorCode = "CANCELLED"

	// Environment errors abort the whole command
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrHomeDir       ErrorCode = "HOME_DIR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Target errors
	ErrUnknownTarget ErrorCode = "UNKNOWN_TARGET"

	// FileSystem errors
	ErrConflict      ErrorCode = "CONFLICT"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// AgentkitError represents a structured error with code and details
type AgentkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AgentkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AgentkitError) Unwrap() error {
	return e.Wrapped
}

// Is matches any AgentkitError carrying the same code
func (e *AgentkitError) Is(target error) bool {
	var targetErr *AgentkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AgentkitError with the given code and message
func New(code ErrorCode, message string) *AgentkitError {
	return &AgentkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AgentkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AgentkitError {
	return &AgentkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *AgentkitError {
	if err == nil {
		return nil
	}
	return &AgentkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AgentkitError {
	if err == nil {
		return nil
	}
	return &AgentkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AgentkitError) WithDetail(key string, value interface{}) *AgentkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var akErr *AgentkitError
	if errors.As(err, &akErr) {
		return akErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AgentkitError
func GetErrorCode(err error) ErrorCode {
	var akErr *AgentkitError
	if errors.As(err, &akErr) {
		return akErr.Code
	}
	return ErrUnknown
}

// IsFatal reports whether err belongs to the environment class that must
// abort a whole command rather than a single item.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrSourceMissing, ErrHomeDir, ErrConfigWrite:
		return true
	}
	return false
}
