package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("bad input")
	err := NewValidationError("invalid task input", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "invalid task input")
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("write blob", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "DATABASE_ERROR", err.Code)

	operation, ok := err.GetContext("operation")
	require.True(t, ok)
	assert.Equal(t, "write blob", operation)
}

func TestNewCorruptStateError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorruptStateError("tasks", cause)

	assert.Equal(t, ErrorTypeCorruptState, err.Type)
	assert.Equal(t, "CORRUPT_STATE", err.Code)
	assert.Contains(t, err.Error(), "tasks")

	slot, ok := err.GetContext("slot")
	require.True(t, ok)
	assert.Equal(t, "tasks", slot)
}

func TestNewExternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalError("review service", "analyze review", cause)

	assert.Equal(t, ErrorTypeExternal, err.Type)
	assert.Equal(t, "EXTERNAL_ERROR", err.Code)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewDatabaseError("read blob", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewValidationError("invalid input", nil).WithContext("field", "deadline")

	value, ok := err.GetContext("field")
	require.True(t, ok)
	assert.Equal(t, "deadline", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewDatabaseError("op", nil)))
	assert.False(t, IsAppError(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", NewDatabaseError("op", nil))
	assert.True(t, IsAppError(wrapped))
}

func TestIsErrorType(t *testing.T) {
	err := NewCorruptStateError("tasks", nil)

	assert.True(t, IsErrorType(err, ErrorTypeCorruptState))
	assert.False(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeDatabase))
}

func TestGetUserMessage(t *testing.T) {
	t.Run("validation message is surfaced verbatim", func(t *testing.T) {
		err := NewValidationError("Task name must not be empty.", nil)
		assert.Equal(t, "Task name must not be empty.", GetUserMessage(err))
	})

	t.Run("database details are hidden", func(t *testing.T) {
		err := NewDatabaseError("write blob", errors.New("disk full"))
		assert.Equal(t, "A database error occurred. Please try again.", GetUserMessage(err))
	})

	t.Run("external details are hidden", func(t *testing.T) {
		err := NewExternalError("review service", "analyze review", errors.New("timeout"))
		assert.Equal(t, "The review service could not be reached. Please try again.", GetUserMessage(err))
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		assert.Equal(t, "plain", GetUserMessage(errors.New("plain")))
	})
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "DATABASE_ERROR", GetErrorCode(NewDatabaseError("op", nil)))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	t.Run("user input and recovered state are not system errors", func(t *testing.T) {
		assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
		assert.False(t, ShouldLogError(NewCorruptStateError("tasks", nil)))
	})

	t.Run("system failures are logged", func(t *testing.T) {
		assert.True(t, ShouldLogError(NewDatabaseError("op", nil)))
		assert.True(t, ShouldLogError(NewExternalError("review service", "op", nil)))
		assert.True(t, ShouldLogError(errors.New("plain")))
	})
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "database", ErrorTypeDatabase.String())
	assert.Equal(t, "corrupt_state", ErrorTypeCorruptState.String())
	assert.Equal(t, "external", ErrorTypeExternal.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}
