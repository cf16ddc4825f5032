package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusSummaryQueryHandler aggregates order counts straight from the
// orders table without loading aggregates.
type GetOrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusSummaryQueryHandler(db *gorm.DB) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{db: db}
}

// Handle executes the aggregation. Rows holding a status outside the
// enumeration fail the query with a validation error.
func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) (GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			raw   string
			count int64
		)
		if err = rows.Scan(&raw, &count); err != nil {
			return GetOrderStatusSummaryQueryResponse{}, err
		}

		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return GetOrderStatusSummaryQueryResponse{}, errs.NewPersistenceError("summarize orders", "", parseErr)
		}
		counts[status] += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	return GetOrderStatusSummaryQueryResponse{Counts: counts}, nil
}
