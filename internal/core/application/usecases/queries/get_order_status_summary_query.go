package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
		"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
	)
)

// GetOrderStatusSummaryQuery counts orders per status.
//
// Example:
//
//	query := NewGetOrderStatusSummaryQuery()
//	handler := NewGetOrderStatusSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders on the way\n", summary.Count(order.OnTheWay))
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// GetOrderStatusSummaryQueryResponse holds a count for every known status,
// including statuses with no orders.
type GetOrderStatusSummaryQueryResponse struct {
	Counts map[order.Status]int64
}

// Count returns the number of orders in the given status.
func (r GetOrderStatusSummaryQueryResponse) Count(status order.Status) int64 {
	return r.Counts[status]
}

// Total returns the number of orders across all statuses.
func (r GetOrderStatusSummaryQueryResponse) Total() int64 {
	var total int64
	for _, n := range r.Counts {
		total += n
	}
	return total
}
