package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler changes the status of an existing order.
//
// By default any valid status may replace any other and only the status column is
// written. With strict transitions enabled the order row is locked and loaded
// first, and the change must be allowed by the status transition table.
// Concurrent strict updates of one order are therefore applied one after another.
type UpdateOrderStatusCommandHandler struct {
	uowFactory        OrderUoWFactory
	strictTransitions bool
}

// NewUpdateOrderStatusCommandHandler creates the handler. strictTransitions
// enables the transition table check.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	strictTransitions bool,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:        uowFactory,
		strictTransitions: strictTransitions,
	}
}

// Handle applies the status change. A missing order is reported as
// errs.BusinessRuleViolationError.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if h.strictTransitions {
		if err := h.checkTransition(ctx, repo, cmd); err != nil {
			return err
		}
	}

	if err := repo.UpdateStatus(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return orderNotFound(cmd.OrderID().String(), err)
		}
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderStatusCommandHandler) checkTransition(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd UpdateOrderStatusCommand,
) error {
	current, found, err := repo.FindByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !found {
		return orderNotFound(cmd.OrderID().String(), nil)
	}

	return current.TransitionTo(cmd.Status())
}

func orderNotFound(id string, cause error) error {
	msg := fmt.Sprintf("Order with ID %s not found.", id)
	if cause != nil {
		return errs.NewBusinessRuleViolationErrorWithCause(msg, cause)
	}
	return errs.NewBusinessRuleViolationError(msg)
}
