package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the trip once from its great-circle distance, persists the order,
// and immediately runs offer sequencing so the nearest eligible rider gets
// the first offer in the same transaction. When no rider is online the order
// is cancelled right away, with no offer rows.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCreateOrderCommand(orderID, requesterID, pickup, drop, "books")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory     DispatchUoWFactory
	notifier       ports.OfferNotifier
	fareCalculator services.FareCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a DispatchUoWFactory for transactional persistence and an
// OfferNotifier for announcing the first offer.
func NewCreateOrderCommandHandler(
	uowFactory DispatchUoWFactory, notifier ports.OfferNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		notifier:       notifier,
		fareCalculator: services.NewFareCalculator(),
	}
}

// Handle processes the order creation command.
// Distance and fare are derived once here and never recomputed. The order,
// its first offer, and the offer deadline commit atomically; the offer
// notification goes out only after the commit succeeds.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	distanceKm, err := cmd.Pickup().DistanceKm(cmd.Drop())
	if err != nil {
		return err
	}

	fare, err := h.fareCalculator.Calculate(distanceKm)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.RequesterID(),
		cmd.Pickup(), cmd.Drop(),
		cmd.PackageDetails(), distanceKm, fare, now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	created, err := offerNext(ctx, uow, newOrder, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if created != nil {
		// Best effort: the expiry sweep re-drives unanswered offers.
		_ = h.notifier.NotifyOfferCreated(ctx, newOrder, created)
	}

	return nil
}
