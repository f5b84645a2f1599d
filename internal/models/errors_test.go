package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"resourceLink": "must not be empty",
		"name":         "must be at most 100 characters",
	}}

	assert.Equal(t, "name: must be at most 100 characters; resourceLink: must not be empty", err.Error())
}

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", NewValidationError("name", "must not be empty"))

	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrUserNotFound))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestRFIDUserPatch_Empty(t *testing.T) {
	name := "Ana"
	assert.True(t, RFIDUserPatch{}.Empty())
	assert.False(t, RFIDUserPatch{Name: &name}.Empty())
}
