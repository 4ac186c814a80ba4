package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: weight 42 out of range",
		Validation("weight %d out of range", 42).Error())
	assert.Equal(t, "not found: job family",
		NotFound("job family").Error())
	assert.Equal(t, "conflict: duplicate application",
		Conflict("duplicate application").Error())
}

func TestErrorMessagesWithCause(t *testing.T) {
	cause := errors.New("boom")
	err := &ValidationError{Message: "job template", Cause: cause}
	assert.Equal(t, "validation error: job template: boom", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestTypeChecksSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to create application: %w", Conflict("duplicate"))

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestRetryable(t *testing.T) {
	assert.False(t, IsRetryable(Conflict("duplicate application")))
	assert.True(t, IsRetryable(StaleWrite("version moved")))
	assert.True(t, IsConflict(StaleWrite("version moved")))
	assert.False(t, IsRetryable(Validation("bad weight")))
	assert.False(t, IsRetryable(nil))
}
