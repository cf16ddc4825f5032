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

func newTestItem(t *testing.T, quantity int, amount float64, currency string) *order.Item {
	t.Helper()

	qty, err := kernel.NewQuantity(quantity)
	require.NoError(t, err)
	price, err := kernel.NewPrice(amount, currency)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), qty, price, nil)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	productID := kernel.NewUUID()
	qty, _ := kernel.NewQuantity(2)
	price, _ := kernel.NewPrice(10, "mxn")

	t.Run("should create item without instructions", func(t *testing.T) {
		item, err := order.NewItem(productID, qty, price, nil)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 2, item.Quantity().Value())
		assert.True(t, item.UnitPrice().IsEqual(price))
		assert.Nil(t, item.Instructions())
	})

	t.Run("should normalize empty instructions to none", func(t *testing.T) {
		empty, _ := order.NewSpecialInstructions("")

		item, err := order.NewItem(productID, qty, price, &empty)

		require.NoError(t, err)
		assert.Nil(t, item.Instructions())
	})

	t.Run("should keep instructions", func(t *testing.T) {
		note, _ := order.NewSpecialInstructions("no onions")

		item, err := order.NewItem(productID, qty, price, &note)

		require.NoError(t, err)
		require.NotNil(t, item.Instructions())
		assert.Equal(t, "no onions", item.Instructions().Value())
	})

	t.Run("should report every zero-value component", func(t *testing.T) {
		item, err := order.NewItem(kernel.UUID{}, kernel.Quantity{}, kernel.Price{}, &order.SpecialInstructions{})

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrQuantityIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
		require.ErrorIs(t, err, order.ErrSpecialInstructionsAreNotConstructed)
	})
}

func TestItem_Total(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
		amount   float64
		currency string
		want     float64
	}{
		{"two units of ten", 2, 10, "mxn", 20},
		{"zero units", 0, 10, "mxn", 0},
		{"usd prices", 3, 2.5, "usd", 7.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := newTestItem(t, tc.quantity, tc.amount, tc.currency)

			total, err := item.Total()

			require.NoError(t, err)
			assert.InDelta(t, tc.want, total.Amount(), 1e-9)
			assert.Equal(t, tc.currency, total.Currency())
		})
	}
}

func TestItem_UpdateQuantity(t *testing.T) {
	item := newTestItem(t, 2, 10, "mxn")

	require.NoError(t, item.UpdateQuantity(5))
	assert.Equal(t, 5, item.Quantity().Value())

	err := item.UpdateQuantity(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, 5, item.Quantity().Value(), "quantity must be unchanged on failure")
}

func TestItem_UpdateInstructions(t *testing.T) {
	item := newTestItem(t, 1, 10, "mxn")

	require.NoError(t, item.UpdateInstructions("extra salsa"))
	require.NotNil(t, item.Instructions())
	assert.Equal(t, "extra salsa", item.Instructions().Value())

	err := item.UpdateInstructions(strings.Repeat("x", 501))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, "extra salsa", item.Instructions().Value())

	require.NoError(t, item.UpdateInstructions(""))
	assert.Nil(t, item.Instructions())

	require.NoError(t, item.UpdateInstructions("again"))
	item.ClearInstructions()
	assert.Nil(t, item.Instructions())
}

func TestRestoreItem(t *testing.T) {
	productID := kernel.NewUUID()
	note := "well done"

	t.Run("should rebuild a stored item", func(t *testing.T) {
		item, err := order.RestoreItem(productID, 3, 12.5, "usd", &note)

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity().Value())
		assert.InDelta(t, 12.5, item.UnitPrice().Amount(), 0)
		assert.Equal(t, "usd", item.UnitPrice().Currency())
		assert.Equal(t, note, item.Instructions().Value())
	})

	t.Run("should fail on corrupted values", func(t *testing.T) {
		long := strings.Repeat("x", 600)

		item, err := order.RestoreItem(productID, -1, -3, "mxn", &long)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "instructions")
	})
}

func TestItem_IsEqual(t *testing.T) {
	productID := kernel.NewUUID()
	note := "x"

	a, _ := order.RestoreItem(productID, 1, 1, "mxn", &note)
	b, _ := order.RestoreItem(productID, 1, 1, "mxn", &note)
	c, _ := order.RestoreItem(productID, 1, 1, "mxn", nil)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
