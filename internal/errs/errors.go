// Package errs defines the error taxonomy shared by the resolver, scoring
// engine, pipeline state machine, and stores.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed input: a bad requirement weight, an
// illegal stage transition, an entity that fails its Validate method.
// Deterministic for a given input; never worth retrying.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates a referenced record (family, template, variant,
// candidate, application) is absent.
type NotFoundError struct {
	Message string
	Cause   error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("not found: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("not found: %s", e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// ConflictError indicates the operation lost to existing state: a duplicate
// application, a transition on a finalized application, or a stale
// optimistic-concurrency write. The stale-write case is the only condition
// in the core worth retrying, against freshly re-fetched state.
type ConflictError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conflict: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("conflict: %s", e.Message)
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError from a format string.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a non-retryable ConflictError from a format string.
func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StaleWrite builds a retryable ConflictError for optimistic-concurrency
// failures.
func StaleWrite(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...), Retryable: true}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsConflict reports whether err wraps a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsRetryable reports whether err wraps a retryable ConflictError.
func IsRetryable(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce) && ce.Retryable
}
