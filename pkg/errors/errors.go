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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Migration errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrDecode         ErrorCode = "DECODE"
	ErrSettingsParse  ErrorCode = "SETTINGS_PARSE"

	// Backup errors
	ErrBackupFailed ErrorCode = "BACKUP_FAILED"
	ErrBackupExists ErrorCode = "BACKUP_EXISTS"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrDirRead   ErrorCode = "DIR_READ"
)

// MigrateError represents a structured error with code and details
type MigrateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MigrateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MigrateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MigrateError) Is(target error) bool {
	var targetErr *MigrateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MigrateError with the given code and message
func New(code ErrorCode, message string) *MigrateError {
	return &MigrateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MigrateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MigrateError {
	return &MigrateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MigrateError.
// A nil err yields a nil *MigrateError; callers returning the plain error
// interface must check err first.
func Wrap(err error, code ErrorCode, message string) *MigrateError {
	if err == nil {
		return nil
	}
	return &MigrateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MigrateError {
	if err == nil {
		return nil
	}
	return &MigrateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MigrateError) WithDetail(key string, value interface{}) *MigrateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MigrateError
func GetErrorCode(err error) ErrorCode {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MigrateError
func GetErrorDetails(err error) map[string]interface{} {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Details
	}
	return nil
}

// Cause returns the innermost wrapped error, which is what gets shown to the
// user next to a failed file.
func Cause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
