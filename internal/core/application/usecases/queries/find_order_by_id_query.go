package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrFindOrderByIDQueryIsNotConstructed = errors.New(
		"FindOrderByIDQuery must be created via NewFindOrderByIDQuery constructor",
	)
)

// FindOrderByIDQuery looks up a single order.
type FindOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFindOrderByIDQuery(orderID kernel.UUID) (FindOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return FindOrderByIDQuery{}, err
	}

	return FindOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderByIDQueryIsNotConstructed)
}

func (q FindOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
