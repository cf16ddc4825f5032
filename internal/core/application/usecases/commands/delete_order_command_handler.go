package commands

import (
	"context"
	"fmt"

	"ordering/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders. The order must exist; deleting an
// unknown order is a business rule violation and nothing is written.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle looks the order up and deletes it in one unit of work.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	_, found, err := repo.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !found {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("Order with ID %s does not exist.", cmd.OrderID().String()),
		)
	}

	if err = repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
