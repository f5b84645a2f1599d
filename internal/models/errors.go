package models

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when no record matches a uid.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a record with the same uid is already stored.
	ErrUserAlreadyExists = errors.New("user with this uid already exists")
)

// ValidationError describes one or more rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Error joins all field messages, ordered by field name.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return strings.Join(parts, "; ")
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
