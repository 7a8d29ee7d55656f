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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Storage errors
	ErrInvalidName ErrorCode = "INVALID_NAME"
	ErrIO          ErrorCode = "IO"
	ErrDecode      ErrorCode = "DECODE"
	ErrDataDir     ErrorCode = "DATA_DIR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Command boundary errors
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"
	ErrBadArgs        ErrorCode = "BAD_ARGS"
)

// ShinseiError represents a structured error with code and details
type ShinseiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShinseiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShinseiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShinseiError) Is(target error) bool {
	var targetErr *ShinseiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShinseiError with the given code and message
func New(code ErrorCode, message string) *ShinseiError {
	return &ShinseiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShinseiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShinseiError {
	return &ShinseiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShinseiError
func Wrap(err error, code ErrorCode, message string) *ShinseiError {
	if err == nil {
		return nil
	}
	return &ShinseiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShinseiError {
	if err == nil {
		return nil
	}
	return &ShinseiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShinseiError) WithDetail(key string, value interface{}) *ShinseiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shinseiErr *ShinseiError
	if errors.As(err, &shinseiErr) {
		return shinseiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShinseiError
func GetErrorCode(err error) ErrorCode {
	var shinseiErr *ShinseiError
	if errors.As(err, &shinseiErr) {
		return shinseiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShinseiError
func GetErrorDetails(err error) map[string]interface{} {
	var shinseiErr *ShinseiError
	if errors.As(err, &shinseiErr) {
		return shinseiErr.Details
	}
	return nil
}
