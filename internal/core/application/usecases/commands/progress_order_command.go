package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrProgressOrderCommandIsNotConstructed = errors.New(
	"ProgressOrderCommand must be created via NewProgressOrderCommand constructor",
)

// ProgressOrderCommand asks the dispatcher to re-evaluate one order's
// outstanding offer: expire it if its deadline passed and move on to the
// next rider, or cancel the order once the global budget is spent. Safe to
// issue at any time; orders without an overdue offer are left untouched.
type ProgressOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProgressOrderCommand creates a progression command for one order.
func NewProgressOrderCommand(orderID kernel.UUID) (ProgressOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProgressOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return ProgressOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrderCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrderCommandIsNotConstructed)
}

// OrderID returns the order to progress.
func (c ProgressOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
