// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNoCandidateFiles = errors.New("no matching watchlist files")
	ErrUnreadableFile   = errors.New("watchlist file could not be read")
	ErrWriteFailed      = errors.New("output write failed")
	ErrDeleteFailed     = errors.New("source file delete failed")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrJournalClosed    = errors.New("run journal is closed")
)

// RunError represents a failure at a specific stage of a run.
type RunError struct {
	Stage string
	Path  string
	Err   error
}

func (e *RunError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("run error [%s] %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("run error [%s]: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError.
func NewRunError(stage, path string, err error) *RunError {
	return &RunError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

// SelectionError reports why file selection produced no usable candidates.
type SelectionError struct {
	Folder  string
	Pattern string
	Days    int
}

func (e *SelectionError) Error() string {
	msg := fmt.Sprintf("no matching .csv/.txt files in %s", e.Folder)
	if e.Pattern != "" {
		msg += fmt.Sprintf(" (pattern %q)", e.Pattern)
	}
	if e.Days > 0 {
		msg += fmt.Sprintf(" (last %d days)", e.Days)
	}
	return msg
}

func (e *SelectionError) Unwrap() error {
	return ErrNoCandidateFiles
}

// NewSelectionError creates a new SelectionError.
func NewSelectionError(folder, pattern string, days int) *SelectionError {
	return &SelectionError{
		Folder:  folder,
		Pattern: pattern,
		Days:    days,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrConfigInvalid
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
