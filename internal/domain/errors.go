// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-level failures wrap this sentinel via ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or missing.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")
)

// ValidationError describes a single field that failed validation.
// It wraps ErrValidation (or a more specific sentinel) so callers can
// branch with errors.Is while still seeing which field was at fault.
type ValidationError struct {
	Field   string // The entity field that failed (e.g., "email", "rating")
	Message string // Human-readable description of the rule that was broken
	Err     error  // Sentinel being wrapped, ErrValidation by default
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinels to support errors.Is/errors.As.
// Every ValidationError matches ErrValidation; ones built with a more
// specific sentinel match that too.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil && e.Err != ErrValidation {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}

// NewValidationError creates a ValidationError for the given field.
// A nil sentinel defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}
