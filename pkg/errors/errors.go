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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Document errors
	ErrIoFailure        ErrorCode = "IO_FAILURE"
	ErrEmptyDocument    ErrorCode = "EMPTY_DOCUMENT"
	ErrMissingDirective ErrorCode = "MISSING_DIRECTIVE"
	ErrUnknownDoctype   ErrorCode = "UNKNOWN_DOCTYPE"
	ErrInvalidSyntax    ErrorCode = "INVALID_SYNTAX"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// OxiError represents a structured error with code and details
type OxiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OxiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OxiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OxiError) Is(target error) bool {
	var targetErr *OxiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OxiError with the given code and message
func New(code ErrorCode, message string) *OxiError {
	return &OxiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OxiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OxiError {
	return &OxiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OxiError
func Wrap(err error, code ErrorCode, message string) *OxiError {
	if err == nil {
		return nil
	}
	return &OxiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OxiError {
	if err == nil {
		return nil
	}
	return &OxiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OxiError) WithDetail(key string, value interface{}) *OxiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OxiError) WithDetails(details map[string]interface{}) *OxiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var oxiErr *OxiError
	if errors.As(err, &oxiErr) {
		return oxiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OxiError
func GetErrorCode(err error) ErrorCode {
	var oxiErr *OxiError
	if errors.As(err, &oxiErr) {
		return oxiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OxiError
func GetErrorDetails(err error) map[string]interface{} {
	var oxiErr *OxiError
	if errors.As(err, &oxiErr) {
		return oxiErr.Details
	}
	return nil
}
