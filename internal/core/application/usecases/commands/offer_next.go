package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// dispatchRepos is the repository surface offer sequencing needs; both
// DispatchUoW and RespondUoW satisfy it.
type dispatchRepos interface {
	OrderRepoFactory
	OfferRepoFactory
	RiderDirectoryFactory
}

// offerNext advances the order to its next candidate rider, or cancels it
// when dispatch is exhausted: no eligible rider remains, or the global
// deadline leaves no time for another offer. Every rider that ever held an
// offer for the order, resolved or not, is excluded from the candidate set.
//
// The order mutation and the new offer row are staged on the caller's
// transaction; nothing is visible until the caller commits. Returns the
// created offer, or nil when the order was cancelled instead.
func offerNext(ctx context.Context, uow dispatchRepos, ord *order.Order, now time.Time) (*offer.Offer, error) {
	history, err := uow.OfferRepository().GetAllForOrder(ctx, ord.ID())
	if err != nil {
		return nil, err
	}

	excluded := make([]kernel.UUID, 0, len(history))
	for _, past := range history {
		excluded = append(excluded, past.RiderID())
	}

	riders, err := uow.RiderDirectory().GetAvailable(ctx, excluded)
	if err != nil {
		return nil, err
	}

	created, err := services.NewOfferSequencer().Next(ord, riders, now)
	if errors.Is(err, services.ErrNoRidersAvailable) || errors.Is(err, order.ErrOfferWindowClosed) {
		if err = ord.Cancel(); err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return nil, err
	}
	if err = uow.OfferRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
