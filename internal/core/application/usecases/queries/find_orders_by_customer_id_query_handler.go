package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// FindOrdersByCustomerIDQueryHandler lists a customer's orders, oldest first.
// A customer without orders yields an empty slice.
type FindOrdersByCustomerIDQueryHandler struct {
	reader OrderReader
}

func NewFindOrdersByCustomerIDQueryHandler(reader OrderReader) FindOrdersByCustomerIDQueryHandler {
	return FindOrdersByCustomerIDQueryHandler{reader: reader}
}

func (h FindOrdersByCustomerIDQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersByCustomerIDQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.FindByCustomerID(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
