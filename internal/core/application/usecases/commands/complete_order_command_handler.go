package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// CompleteOrderCommandHandler marks an accepted order as delivered.
// Only the rider recorded as the order's driver may complete it; anyone else
// gets an ObjectNotFoundError, the same answer as for a nonexistent order.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.Driver() == nil || !ord.Driver().IsEqual(cmd.RiderID()) {
		return errs.NewObjectNotFoundError("order for rider", cmd.OrderID())
	}

	if err = ord.Deliver(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
