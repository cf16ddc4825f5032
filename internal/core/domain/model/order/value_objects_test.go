package order_test

import (
	"strings"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecialInstructions(t *testing.T) {
	t.Run("should accept up to 500 characters", func(t *testing.T) {
		text := strings.Repeat("ñ", order.MaxSpecialInstructionsLength)

		si, err := order.NewSpecialInstructions(text)

		require.NoError(t, err)
		require.NoError(t, si.Validate())
		assert.Equal(t, text, si.Value())
	})

	t.Run("should reject 501 characters", func(t *testing.T) {
		_, err := order.NewSpecialInstructions(strings.Repeat("a", order.MaxSpecialInstructionsLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "instructions is 501")
	})

	t.Run("should accept empty text", func(t *testing.T) {
		si, err := order.NewSpecialInstructions("")

		require.NoError(t, err)
		assert.True(t, si.IsEmpty())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.Equal(t, order.ErrSpecialInstructionsAreNotConstructed, order.SpecialInstructions{}.Validate())
	})
}

func TestNewDeliveryAddress(t *testing.T) {
	gps, err := kernel.NewCoordinates(19.4326, -99.1332)
	require.NoError(t, err)

	t.Run("should create a valid address", func(t *testing.T) {
		a, err := order.NewDeliveryAddress("Av. Reforma", "CDMX", 222, "06600", gps)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Av. Reforma", a.Street())
		assert.Equal(t, "CDMX", a.City())
		assert.Equal(t, 222, a.Number())
		assert.Equal(t, "06600", a.PostalCode())
		assert.True(t, gps.IsEqual(a.GPS()))
	})

	t.Run("should report every blank field", func(t *testing.T) {
		_, err := order.NewDeliveryAddress(" ", "", 1, "\t", gps)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "postal code")
	})

	t.Run("should reject zero coordinates value", func(t *testing.T) {
		_, err := order.NewDeliveryAddress("a", "b", 1, "c", kernel.Coordinates{})

		require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := order.NewDeliveryAddress("a", "b", 1, "c", gps)
		b, _ := order.NewDeliveryAddress("a", "b", 1, "c", gps)
		c, _ := order.NewDeliveryAddress("a", "b", 2, "c", gps)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
