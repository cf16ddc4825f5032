// Package ports declares the contracts the application core expects from the
// outside world: persistence of the Order aggregate and transaction control.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Save persists the whole aggregate, replacing its item set, and returns the
	// freshly reloaded order. Saving is atomic: a concurrent reader never sees the
	// order with its items half replaced.
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// FindByID retrieves an order by its identifier. A missing order is reported
	// with found == false and a nil error.
	FindByID(ctx context.Context, id kernel.UUID) (aggregate *order.Order, found bool, err error)

	// FindByIDForUpdate is FindByID that also locks the order row until the
	// surrounding transaction ends. It must be called inside a unit of work.
	FindByIDForUpdate(ctx context.Context, id kernel.UUID) (aggregate *order.Order, found bool, err error)

	// FindByCustomerID retrieves all orders of a customer, oldest first.
	// The result may be empty.
	FindByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// UpdateStatus persists only the status of an order. It returns an
	// errs.ObjectNotFoundError when no order has the given id.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// Delete removes an order together with its items.
	Delete(ctx context.Context, id kernel.UUID) error
}
