package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "User does not exist!", NotFound().Error())
	assert.Equal(t, "Validation failed: age must be at least 1", Invalid("age must be at least 1").Error())

	cause := errors.New("duplicated key not allowed")
	err := Wrap(cause, CodeConflict, "User already exists!")
	assert.Equal(t, "User already exists!: duplicated key not allowed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("update failed: %w", NotFound())

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(wrapped, CodeConflict))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.False(t, IsCode(errors.New("boom"), CodeInternal))
}

func TestWrapNil(t *testing.T) {
	err := Wrap(nil, CodeInternal, "no cause")
	assert.Nil(t, err.Err)
	assert.Equal(t, "no cause", err.Error())
}
