package domain

import "errors"

// Common domain errors
var (
	ErrPersistence = errors.New("persistence failure")
)

// Catalog errors
var (
	ErrMalformedPrice   = errors.New("plan price string carries no numeric value")
	ErrTemplateNotFound = errors.New("policy template not found")
)

// Policy errors
var (
	ErrPolicyNotFound = errors.New("policy not found")
)

// ValidationError carries one message per invalid input field.
// It is always produced before any write reaches the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError creates an empty field-keyed validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for an invalid field
func (e *ValidationError) Add(field, message string) {
	if _, taken := e.Fields[field]; !taken {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failed validation
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
