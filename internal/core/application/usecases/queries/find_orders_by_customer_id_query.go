package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrFindOrdersByCustomerIDQueryIsNotConstructed = errors.New(
		"FindOrdersByCustomerIDQuery must be created via NewFindOrdersByCustomerIDQuery constructor",
	)
)

// FindOrdersByCustomerIDQuery lists every order placed by a customer.
type FindOrdersByCustomerIDQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFindOrdersByCustomerIDQuery(customerID kernel.UUID) (FindOrdersByCustomerIDQuery, error) {
	if err := customerID.Validate(); err != nil {
		return FindOrdersByCustomerIDQuery{}, err
	}

	return FindOrdersByCustomerIDQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q FindOrdersByCustomerIDQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersByCustomerIDQueryIsNotConstructed)
}

func (q FindOrdersByCustomerIDQuery) CustomerID() kernel.UUID {
	return q.customerID
}
