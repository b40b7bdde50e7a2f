package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ProgressOrderCommandHandler is the progression driver's entry point. It
// implements the idempotent expire-if-due check: overdue offers are expired
// and sequencing moves to the next rider; orders past the 30-minute global
// deadline are cancelled outright.
//
// Concurrent invocations for the same order are safe: every order and offer
// write is conditioned on the status it was loaded with, so whichever caller
// commits first wins and the loser's transaction resolves to a Conflict,
// which this handler treats as "already progressed elsewhere" and swallows.
// Progression re-enters Assigned, so the order write alone cannot arbitrate;
// the offer write is what makes the second expiry of the same offer lose.
type ProgressOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.OfferNotifier
}

// NewProgressOrderCommandHandler creates a handler for order progression.
func NewProgressOrderCommandHandler(
	uowFactory DispatchUoWFactory, notifier ports.OfferNotifier,
) ProgressOrderCommandHandler {
	return ProgressOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle progresses a single order. No-op when the order is not assigned or
// its offer deadline has not passed yet.
func (h ProgressOrderCommandHandler) Handle(ctx context.Context, cmd ProgressOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.progress(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		// A concurrent trigger already advanced this order.
		return nil
	}

	return err
}

// HandleAllDue progresses every order currently holding an outstanding
// offer. Each order runs in its own transaction so one failure does not
// block the rest of the sweep; failures are joined and reported together.
func (h ProgressOrderCommandHandler) HandleAllDue(ctx context.Context) error {
	ids, err := h.assignedOrderIDs(ctx)
	if err != nil {
		return err
	}

	var errAll error
	for _, id := range ids {
		cmd, err := NewProgressOrderCommand(id)
		if err != nil {
			errAll = errors.Join(errAll, err)
			continue
		}
		if err = h.Handle(ctx, cmd); err != nil {
			errAll = errors.Join(errAll, err)
		}
	}

	return errAll
}

func (h ProgressOrderCommandHandler) assignedOrderIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assigned, err := uow.OrderRepository().GetAllInAssignedStatus(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(assigned))
	for _, ord := range assigned {
		ids = append(ids, ord.ID())
	}

	return ids, nil
}

func (h ProgressOrderCommandHandler) progress(ctx context.Context, cmd ProgressOrderCommand) error {
	now := time.Now().UTC()

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

	if ord.Status() != order.Assigned {
		return nil
	}

	if ord.PastGlobalDeadline(now) {
		if err = h.expireActiveOffer(ctx, uow, ord); err != nil {
			return err
		}
		if err = ord.Cancel(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if !ord.OfferDue(now) {
		return nil
	}

	if err = h.expireActiveOffer(ctx, uow, ord); err != nil {
		return err
	}

	followUp, err := offerNext(ctx, uow, ord, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if followUp != nil {
		// Best effort: the next sweep re-drives unanswered offers.
		_ = h.notifier.NotifyOfferCreated(ctx, ord, followUp)
	}

	return nil
}

// expireActiveOffer resolves the order's outstanding offer, if any, as
// expired. A missing active offer is not an error: the global-deadline path
// can fire on an order whose offer was already resolved.
func (h ProgressOrderCommandHandler) expireActiveOffer(
	ctx context.Context, uow DispatchUoW, ord *order.Order,
) error {
	active, err := uow.OfferRepository().GetActiveForOrder(ctx, ord.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = active.Expire(); err != nil {
		return err
	}

	return uow.OfferRepository().Update(ctx, active)
}
