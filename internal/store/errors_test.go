package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrTaskNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("some other error")))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("formats with wrapped error", func(t *testing.T) {
		t.Parallel()

		inner := errors.New("connection reset")
		err := NewStoreError("task", "save", "insert rejected", inner)

		assert.Contains(t, err.Error(), "save operation on task failed")
		assert.Contains(t, err.Error(), "connection reset")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("formats without wrapped error", func(t *testing.T) {
		t.Parallel()

		err := NewStoreError("task", "delete", "something odd", nil)
		assert.Equal(t, "delete operation on task failed: something odd", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("not-found sentinel survives wrapping", func(t *testing.T) {
		t.Parallel()

		err := NewStoreError("task", "find", "lookup failed", ErrTaskNotFound)
		assert.True(t, IsNotFoundError(err))
	})
}
