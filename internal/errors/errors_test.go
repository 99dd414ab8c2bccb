package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "task"}
		assert.Equal(t, "task not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "task"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTaskNotFound, ErrTaskNotFound))
		assert.False(t, errors.Is(ErrTaskNotFound, ErrLeaveNotFound))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "attendance record", Context: "for this date"}
		assert.Equal(t, "attendance record already exists for this date", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		err2 := ErrUserExists
		assert.True(t, errors.Is(err1, err2))
		assert.False(t, errors.Is(err1, ErrOrganizationExists))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})
}

func TestStateTransitionError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &StateTransitionError{Entity: "task", From: "completed", To: "pending"}
		assert.Equal(t, `invalid task status transition from "completed" to "pending"`, err.Error())
	})

	t.Run("errors.Is matches any transition error", func(t *testing.T) {
		err := &StateTransitionError{Entity: "leave", From: "approved", To: "rejected"}
		assert.True(t, errors.Is(err, &StateTransitionError{}))
		assert.False(t, errors.Is(err, ErrLeaveNotFound))
	})

	t.Run("errors.As extraction", func(t *testing.T) {
		var target *StateTransitionError
		err := error(&StateTransitionError{Entity: "expense", From: "pending", To: "pending"})
		assert.True(t, errors.As(err, &target))
		assert.Equal(t, "expense", target.Entity)
	})
}

func TestAuthErrors(t *testing.T) {
	assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	assert.Equal(t, "insufficient permissions", ErrForbidden.Error())
	assert.Equal(t, "record is outside your organization scope", ErrScopeViolation.Error())
}
