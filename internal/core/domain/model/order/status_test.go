package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep Unknown as zero value", func(t *testing.T) {
		var s order.Status

		assert.Equal(t, order.Unknown, s)
		require.Error(t, s.Validate())
	})

	t.Run("should list every valid status once", func(t *testing.T) {
		statuses := order.Statuses()

		assert.Len(t, statuses, 7)
		seen := map[order.Status]bool{}
		for _, s := range statuses {
			assert.False(t, seen[s], "duplicate status %s", s)
			seen[s] = true
			require.NoError(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status order.Status
		wire   string
		name   string
	}{
		{order.Received, "Recibido", "RECEIVED"},
		{order.Confirmed, "Confirmado", "CONFIRMED"},
		{order.Preparing, "EnPreparación", "PREPARING"},
		{order.Ready, "Listo", "READY"},
		{order.OnTheWay, "EnCamino", "ON_THE_WAY"},
		{order.Delivered, "Entregado", "DELIVERED"},
		{order.Canceled, "Cancelado", "CANCELED"},
		{order.Unknown, "Unknown", "UNKNOWN"},
		{order.Status(99), "Unknown", "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wire, tc.status.String())
			assert.Equal(t, tc.name, tc.status.Name())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse wire values and names", func(t *testing.T) {
		for _, s := range order.Statuses() {
			fromWire, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, fromWire)

			fromName, err := order.ParseStatus(s.Name())
			require.NoError(t, err)
			assert.Equal(t, s, fromName)
		}
	})

	t.Run("should reject values outside the enumeration", func(t *testing.T) {
		for _, v := range []string{"", "Unknown", "Shipped", "entregado", "42"} {
			t.Run(fmt.Sprintf("value %q", v), func(t *testing.T) {
				s, err := order.ParseStatus(v)

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.True(t, errs.IsValidation(err))
				assert.Equal(t, order.Unknown, s)
			})
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Received:  {order.Confirmed, order.Canceled},
		order.Confirmed: {order.Preparing, order.Canceled},
		order.Preparing: {order.Ready, order.Canceled},
		order.Ready:     {order.OnTheWay, order.Canceled},
		order.OnTheWay:  {order.Delivered},
	}

	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	t.Run("terminal statuses have no successors", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Canceled.IsTerminal())
		assert.False(t, order.Ready.IsTerminal())
	})
}

func TestStatus_ValidateTransition(t *testing.T) {
	require.NoError(t, order.Confirmed.ValidateTransition(order.Preparing))

	err := order.Delivered.ValidateTransition(order.Received)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "transition from Entregado to Recibido is not allowed")

	err = order.Received.ValidateTransition(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
