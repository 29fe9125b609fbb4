package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrMalformedDocument marks an input document that is not well-formed
	// XML. It aborts the import before anything is written.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrIncompleteRecord marks a dictionary record lacking a required field.
	// Such records are skipped and counted.
	ErrIncompleteRecord = errors.New("incomplete record")
	// ErrPersistence marks a failure while resetting or writing the store.
	ErrPersistence = errors.New("persistence failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IncompleteRecordError names the headword and the missing field of a
// skipped record.
type IncompleteRecordError struct {
	Headword string
	Field    string
}

func (e *IncompleteRecordError) Error() string {
	if e.Headword == "" {
		return fmt.Sprintf("incomplete record: missing %s", e.Field)
	}
	return fmt.Sprintf("incomplete record %q: missing %s", e.Headword, e.Field)
}

func (e *IncompleteRecordError) Unwrap() error { return ErrIncompleteRecord }
