package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RespondToOfferCommandHandler applies a rider's accept or decline decision.
//
// Accept resolves the whole dispatch: the offer becomes accepted, every
// sibling offer is forced terminal, the order records the rider as its driver,
// and the verification code pair is generated, all in one transaction.
// Decline resolves only this rider's offer and immediately re-runs offer
// sequencing so the next candidate gets a fresh window.
//
// An order that is no longer assigned, or a rider without the outstanding
// offer, yields an ObjectNotFoundError: the offer the rider is answering no
// longer exists.
type RespondToOfferCommandHandler struct {
	uowFactory RespondUoWFactory
	notifier   ports.OfferNotifier
}

// NewRespondToOfferCommandHandler creates a handler for offer responses.
func NewRespondToOfferCommandHandler(
	uowFactory RespondUoWFactory, notifier ports.OfferNotifier,
) RespondToOfferCommandHandler {
	return RespondToOfferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the response command. The offer notification for a
// follow-up offer after a decline goes out only after the commit succeeds.
func (h RespondToOfferCommandHandler) Handle(ctx context.Context, cmd RespondToOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	riderOffer, err := uow.OfferRepository().GetByOrderAndRider(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return err
	}

	if ord.Status() != order.Assigned || riderOffer.Status() != offer.Offered {
		return errs.NewObjectNotFoundError("active offer", cmd.OrderID())
	}

	var followUp *offer.Offer
	switch cmd.Decision() {
	case DecisionAccept:
		err = h.accept(ctx, uow, ord, riderOffer)
	case DecisionDecline:
		followUp, err = h.decline(ctx, uow, ord, riderOffer, now)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if followUp != nil {
		// Best effort: the expiry sweep re-drives unanswered offers.
		_ = h.notifier.NotifyOfferCreated(ctx, ord, followUp)
	}

	return nil
}

func (h RespondToOfferCommandHandler) accept(
	ctx context.Context, uow RespondUoW, ord *order.Order, riderOffer *offer.Offer,
) error {
	if err := riderOffer.Accept(); err != nil {
		return err
	}
	if err := uow.OfferRepository().Update(ctx, riderOffer); err != nil {
		return err
	}

	siblings, err := uow.OfferRepository().GetAllForOrder(ctx, ord.ID())
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if sibling.IsEqual(riderOffer) || sibling.Status().IsResolved() {
			continue
		}
		if err = sibling.Expire(); err != nil {
			return err
		}
		if err = uow.OfferRepository().Update(ctx, sibling); err != nil {
			return err
		}
	}

	if err = ord.Accept(riderOffer.RiderID()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	codes, err := order.GenerateVerificationCodes()
	if err != nil {
		return err
	}

	return uow.VerificationCodeRepository().Add(ctx, ord.ID(), codes)
}

func (h RespondToOfferCommandHandler) decline(
	ctx context.Context, uow RespondUoW, ord *order.Order, riderOffer *offer.Offer, now time.Time,
) (*offer.Offer, error) {
	if err := riderOffer.Decline(); err != nil {
		return nil, err
	}
	if err := uow.OfferRepository().Update(ctx, riderOffer); err != nil {
		return nil, err
	}

	return offerNext(ctx, uow, ord, now)
}
