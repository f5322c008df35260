// Package errors provides consistent error types for the Logbook CLI.
// It defines four categories: validation errors (fixable user input),
// not-found errors, state-conflict errors, and storage errors (database
// failures the user cannot directly fix).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSettingNotFound  = errors.New("setting not found")
	ErrActivityEnded    = errors.New("activity already ended")
	ErrEndBeforeStart   = errors.New("end time must be after start time")
	ErrProjectRequired  = errors.New("project is required")
)

// ValidationError represents invalid user input that the user can fix.
// Examples: empty project name, estimated hours out of range, end time
// before start time.
type ValidationError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel identifying the violated rule (optional)
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewValidationErrorWithCause creates a new ValidationError wrapping a
// sentinel, so callers can match the violated rule with errors.Is.
func NewValidationErrorWithCause(message, suggestion string, cause error) *ValidationError {
	return &ValidationError{
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}

// NewValidationErrorWithField creates a new ValidationError with field context.
func NewValidationErrorWithField(field, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// ConflictError represents an operation rejected because the record is in
// the wrong state, such as ending an activity that already ended. The
// record is left untouched.
type ConflictError struct {
	Message string
	Cause   error // Sentinel identifying the conflict (e.g. ErrActivityEnded)
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// NewConflictError creates a new ConflictError wrapping a sentinel.
func NewConflictError(message string, cause error) *ConflictError {
	return &ConflictError{
		Message: message,
		Cause:   cause,
	}
}

// StorageError represents a database-level failure. The enclosing
// transaction has been rolled back; no partial writes remain.
type StorageError struct {
	Op    string // The operation that failed
	Cause error  // The underlying driver error
}

func (e *StorageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("storage failure during %s", e.Op)
	}
	return "storage failure"
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError with operation context.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{
		Op:    op,
		Cause: cause,
	}
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound checks if an error is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrActivityNotFound) ||
		errors.Is(err, ErrSettingNotFound)
}

// IsConflict checks if an error is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsStorage checks if an error is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsConflict extracts a ConflictError from an error chain.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

// AsStorage extracts a StorageError from an error chain.
func AsStorage(err error) (*StorageError, bool) {
	var se *StorageError
	ok := errors.As(err, &se)
	return se, ok
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
