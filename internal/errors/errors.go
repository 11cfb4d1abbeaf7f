// Package errors provides consistent error types for the tally CLI.
// It distinguishes user errors (fixable input) from system errors
// (storage or environment trouble); only user errors are surfaced with
// correction guidance, system errors are logged and swallowed where
// the in-memory state can carry on.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrInvalidTarget     = errors.New("invalid target")
	ErrInvalidCount      = errors.New("invalid count")
	ErrNoTarget          = errors.New("no target set")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidSince      = errors.New("invalid time expression")
	ErrDatabaseCorrupted = errors.New("database corrupted")
	ErrDiskFull          = errors.New("disk full")
)

// UserError represents an error that the user can fix.
// Examples: a target that is not a positive integer.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// NewUserErrorWithField creates a UserError tied to a specific input.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
		Field:      field,
		Value:      value,
	}
}

// AsUserError returns the UserError in err's chain, if any.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsUserError reports whether err is (or wraps) a UserError.
func IsUserError(err error) bool {
	_, ok := AsUserError(err)
	return ok
}

// SystemError represents an environment or storage problem the user
// cannot directly fix.
type SystemError struct {
	Message string
	Err     error
}

func (e *SystemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// NewSystemError wraps err as a SystemError.
func NewSystemError(message string, err error) *SystemError {
	return &SystemError{Message: message, Err: err}
}

// IsSystemError reports whether err is (or wraps) a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// Is, As and Wrap re-exports so callers only import this package.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message, preserving the chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf annotates err with a formatted message, preserving the chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
