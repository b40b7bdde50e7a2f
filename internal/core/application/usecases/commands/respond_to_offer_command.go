package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRespondToOfferCommandIsNotConstructed = errors.New(
	"RespondToOfferCommand must be created via NewRespondToOfferCommand constructor",
)

// Decision is a rider's answer to an outstanding offer.
type Decision string

const (
	// DecisionAccept means the rider takes the delivery.
	DecisionAccept Decision = "accept"
	// DecisionDecline means the rider turns the offer down.
	DecisionDecline Decision = "decline"
)

// Validate checks that the decision is one of the two allowed values.
func (d Decision) Validate() error {
	if d != DecisionAccept && d != DecisionDecline {
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is not a valid decision", string(d)))
	}
	return nil
}

// RespondToOfferCommand represents a rider's response to the offer currently
// extended to them for an order.
//
// Example:
//
//	cmd, err := NewRespondToOfferCommand(orderID, riderID, DecisionAccept)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type RespondToOfferCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	riderID  kernel.UUID
	decision Decision

	guard guard.ConstructorGuard
}

// NewRespondToOfferCommand creates a command carrying a rider's accept or
// decline decision for an order's outstanding offer.
func NewRespondToOfferCommand(
	orderID kernel.UUID, riderID kernel.UUID, decision Decision,
) (RespondToOfferCommand, error) {
	cmd := RespondToOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
		cmd.setDecision(decision),
	); err != nil {
		return RespondToOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToOfferCommand) Validate() error {
	return c.guard.Validate(ErrRespondToOfferCommandIsNotConstructed)
}

// OrderID returns the order being responded to.
func (c RespondToOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the responding rider.
func (c RespondToOfferCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Decision returns the rider's answer.
func (c RespondToOfferCommand) Decision() Decision {
	return c.decision
}

func (c *RespondToOfferCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	c.orderID = orderID
	return nil
}

func (c *RespondToOfferCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rider id", err)
	}

	c.riderID = riderID
	return nil
}

func (c *RespondToOfferCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
