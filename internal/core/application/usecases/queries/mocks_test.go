package queries_test

import (
	"context"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, bool, error) {
	args := m.Called(ctx, id)
	var o *order.Order
	if v := args.Get(0); v != nil {
		o = v.(*order.Order)
	}
	return o, args.Bool(1), args.Error(2)
}

func (m *MockOrderReader) FindByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	var orders []*order.Order
	if v := args.Get(0); v != nil {
		orders = v.([]*order.Order)
	}
	return orders, args.Error(1)
}

func newTestOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	gps, err := kernel.NewCoordinates(20.6597, -103.3496)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("Calle Morelos", "Guadalajara", 120, "44100", gps)
	require.NoError(t, err)
	item, err := order.RestoreItem(kernel.NewUUID(), 1, 85.5, "mxn", nil)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), customerID, address, []*order.Item{item}, status)
	require.NoError(t, err)
	return o
}
