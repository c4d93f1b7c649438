package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "place"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrPlaceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShiftNotFound))
		assert.False(t, IsNotFound(ErrShiftSlotExists))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "shift conflict for this date, time range and place", ErrShiftSlotExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "shift"}
		assert.Equal(t, "shift conflict", err.Error())
	})

	t.Run("errors.Is compares by entity", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftFull, ErrShiftSlotExists))
		assert.False(t, errors.Is(ErrShiftFull, ErrExhibitorInUse))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrShiftFull))
		assert.True(t, IsConflict(ErrExhibitorInUse))
		assert.False(t, IsConflict(ErrShiftNotFound))
	})

	t.Run("wrapped conflict is still detected", func(t *testing.T) {
		wrapped := fmt.Errorf("assigning volunteer: %w", ErrShiftFull)
		assert.True(t, IsConflict(wrapped))
		assert.True(t, errors.Is(wrapped, ErrShiftFull))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "time_range", Message: "does not match HH:MM-HH:MM"}
		assert.Equal(t, "validation error: time_range - does not match HH:MM-HH:MM", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid"}
		assert.Equal(t, "validation error: invalid", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("time_range", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestDuplicateError(t *testing.T) {
	t.Run("Error message carries the key", func(t *testing.T) {
		err := NewDuplicateError("shift=a user=b offset=one_day")
		assert.Equal(t, "notification already recorded for shift=a user=b offset=one_day", err.Error())
	})

	t.Run("IsDuplicate helper", func(t *testing.T) {
		assert.True(t, IsDuplicate(NewDuplicateError("k")))
		assert.False(t, IsDuplicate(ErrShiftSlotExists))
	})

	t.Run("wrapped duplicate is still detected", func(t *testing.T) {
		wrapped := fmt.Errorf("recording attempt: %w", NewDuplicateError("k"))
		assert.True(t, IsDuplicate(wrapped))
	})
}

func TestDispatchError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewDispatchError("smtp timeout")
		assert.Equal(t, "dispatch failed: smtp timeout", err.Error())
	})

	t.Run("IsDispatch helper", func(t *testing.T) {
		assert.True(t, IsDispatch(NewDispatchError("x")))
		assert.False(t, IsDispatch(ErrShiftFull))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrMissingSchedulerToken))
	assert.False(t, IsAuthentication(ErrShiftNotFound))

	assert.True(t, IsAuthorization(&AuthorizationError{Message: "forbidden"}))
	assert.False(t, IsAuthorization(ErrMissingSchedulerToken))
}
