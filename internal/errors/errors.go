// Package errors provides centralized error definitions and error
// handling utilities for mosaic. It defines the composition error
// taxonomy, error constructors with context, and classification helpers.
//
// # Error Taxonomy
//
// The coordinator distinguishes three outcomes:
//
//   - ValidationError: null or malformed input, checked eagerly before
//     any mutation
//   - PreconditionError: the operation requires prior state that does
//     not exist (never-activated view-model, self-referential
//     activation)
//   - Silent no-op: benign absence of a target (unknown region name, no
//     matching parent region) — deliberately NOT an error; nothing in
//     this package represents it
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("view model must not be nil").WithField("viewModel")
//	err := errors.NewPreconditionError("view model must be activated before deactivation", errors.ErrNotActivated)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNotActivated) { ... }
//
//	var pre *errors.PreconditionError
//	if errors.As(err, &pre) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience. This allows
// callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the composition coordinator.
var (
	// ErrNotActivated indicates an operation on a view-model that was
	// never activated into a region.
	ErrNotActivated = New("view model has not been activated")
	// ErrSelfParent indicates an attempt to activate a view-model into
	// itself.
	ErrSelfParent = New("view model cannot be its own parent")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrRegionNotFound indicates that a named region is not present in
	// the substrate. Coordinator operations treat it as a silent no-op;
	// it is exported so that callers inspecting lower layers can test
	// for it.
	ErrRegionNotFound = New("region not found")
	// ErrDispatcherStopped indicates a UI-thread hand-off to a
	// dispatcher that is no longer running.
	ErrDispatcherStopped = New("dispatcher is not running")
)

// ValidationError represents invalid input, raised before any side
// effect.
type ValidationError struct {
	message string
	cause   error
	Field   string
	Value   any
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// WithField records the offending argument name.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the offending value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds an underlying cause.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// PreconditionError represents an operation attempted against state that
// does not exist, such as deactivating a view-model that was never
// activated.
type PreconditionError struct {
	message     string
	cause       error
	Operation   string
	ViewModelID int64
}

// NewPreconditionError creates a PreconditionError.
func NewPreconditionError(message string, cause error) *PreconditionError {
	return &PreconditionError{message: message, cause: cause, ViewModelID: -1}
}

// WithOperation records the coordinator operation that failed.
func (e *PreconditionError) WithOperation(op string) *PreconditionError {
	e.Operation = op
	return e
}

// WithViewModel records the view-model identity involved.
func (e *PreconditionError) WithViewModel(id int64) *PreconditionError {
	e.ViewModelID = id
	return e
}

// Error returns the formatted error message.
func (e *PreconditionError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	if e.ViewModelID >= 0 {
		parts = append(parts, fmt.Sprintf("view_model=%d", e.ViewModelID))
	}

	prefix := "precondition error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("precondition error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *PreconditionError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target.
func (e *PreconditionError) Is(target error) bool {
	if _, ok := target.(*PreconditionError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// NotFoundError represents a resource that could not be found.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	cause        error
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
}

// WithCause adds an underlying cause.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Unwrap returns the underlying cause.
func (e *NotFoundError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// IsValidation reports whether err is an argument-validation failure.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var v *ValidationError
	return As(err, &v)
}

// IsPrecondition reports whether err is an operation-precondition
// failure.
func IsPrecondition(err error) bool {
	if err == nil {
		return false
	}
	var p *PreconditionError
	return As(err, &p)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
