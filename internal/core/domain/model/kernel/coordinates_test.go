package kernel_test

import (
	"math"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should accept valid coordinates", func(t *testing.T) {
		c, err := kernel.NewCoordinates(19.4326, -99.1332)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, 19.4326, c.Latitude(), 0)
		assert.InDelta(t, -99.1332, c.Longitude(), 0)
	})

	t.Run("should accept bounds", func(t *testing.T) {
		_, err := kernel.NewCoordinates(kernel.MaxLatitude, kernel.MinLongitude)
		require.NoError(t, err)
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
			param    string
		}{
			{"latitude too high", 90.1, 0, "latitude"},
			{"latitude too low", -91, 0, "latitude"},
			{"longitude too high", 0, 180.5, "longitude"},
			{"latitude NaN", math.NaN(), 0, "latitude"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lng)

				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), tc.param)
			})
		}
	})

	t.Run("should join both failures", func(t *testing.T) {
		_, err := kernel.NewCoordinates(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, _ := kernel.NewCoordinates(1, 2)
	b, _ := kernel.NewCoordinates(1, 2)
	c, _ := kernel.NewCoordinates(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, kernel.Coordinates{}.Validate())
}
