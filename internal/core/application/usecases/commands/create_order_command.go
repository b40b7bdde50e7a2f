package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// Encapsulates the requester, the geocoded pickup and drop points, and the
// package description.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, requesterID, pickup, drop, "books")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requesterID    kernel.UUID
	pickup         kernel.GeoPoint
	drop           kernel.GeoPoint
	packageDetails string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that both IDs are valid and both coordinates were properly
// constructed. The package description may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	packageDetails string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		packageDetails: packageDetails,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRequesterID(requesterID),
		orderCommand.setPickup(pickup),
		orderCommand.setDrop(drop),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the ID of the user placing the order.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Pickup returns the pickup coordinate.
func (c CreateOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

// Drop returns the drop-off coordinate.
func (c CreateOrderCommand) Drop() kernel.GeoPoint {
	return c.drop
}

// PackageDetails returns the free-form package description.
func (c CreateOrderCommand) PackageDetails() string {
	return c.packageDetails
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester id", err)
	}

	c.requesterID = requesterID
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDrop(drop kernel.GeoPoint) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop", err)
	}

	c.drop = drop
	return nil
}
