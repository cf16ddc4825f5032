package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("quantity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a value object that is copied around.
func TestConstructorGuardEmbedded(t *testing.T) {
	var errQuantityNotConstructed = errors.New("Quantity must be created via NewQuantity")

	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	newQuantity := func(v int) (quantity, error) {
		if v < 0 {
			return quantity{}, errors.New("quantity cannot be negative")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("copies_keep_the_flag", func(t *testing.T) {
		q, err := newQuantity(3)
		require.NoError(t, err)

		cp := q
		require.NoError(t, cp.guard.Validate(errQuantityNotConstructed))
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		q, err := newQuantity(-1)
		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, q.guard.Validate(errQuantityNotConstructed))
	})
}
