package queries

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// FindOrderByIDQueryHandler returns one order or a business rule violation when
// the order does not exist.
type FindOrderByIDQueryHandler struct {
	reader OrderReader
}

func NewFindOrderByIDQueryHandler(reader OrderReader) FindOrderByIDQueryHandler {
	return FindOrderByIDQueryHandler{reader: reader}
}

// Handle executes the lookup.
func (h FindOrderByIDQueryHandler) Handle(ctx context.Context, query FindOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, ok, err := h.reader.FindByID(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewBusinessRuleViolationError(
			fmt.Sprintf("Order with ID %s not found.", query.OrderID()),
		)
	}

	return found, nil
}
