// Package queries contains read-only operations over orders.
// Query handlers never open a unit of work: they read through an OrderReader
// or directly through the database for aggregated views.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderReader is the read half of ports.OrderRepository.
type OrderReader interface {
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, bool, error)
	FindByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
