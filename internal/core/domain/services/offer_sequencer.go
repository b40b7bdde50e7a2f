package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
)

// ErrNoRidersAvailable is returned when no eligible rider remains for an
// order: either none were supplied, or all of them already held an offer.
var ErrNoRidersAvailable = errors.New("no riders available")

// OfferSequencer is the domain service behind OfferNext: given an order and
// the riders still eligible for it, it picks the next candidate, opens the
// order's offer window, and creates the corresponding offer record.
//
// Business rules:
//   - Exactly one offer is outstanding per order at any time
//   - Candidates are ranked on-route first, nearest-to-pickup first
//   - A rider who already held an offer for the order must not appear in
//     the candidate list (the caller excludes them)
//   - The offer window is 120 seconds, clamped to the order's 30-minute
//     global deadline
//
// Example usage:
//
//	sequencer := NewOfferSequencer()
//	next, err := sequencer.Next(ord, riders, time.Now().UTC())
//	if errors.Is(err, ErrNoRidersAvailable) {
//	    // dispatch exhausted, cancel the order
//	    return
//	}
type OfferSequencer struct {
	eligibility RouteEligibility
}

// NewOfferSequencer creates a new OfferSequencer instance.
func NewOfferSequencer() OfferSequencer {
	return OfferSequencer{eligibility: NewRouteEligibility()}
}

// Next picks the best remaining candidate for the order, transitions the
// order to its next offer window, and returns the created offer. The order
// is mutated (status, offer deadline); the caller persists both the order
// and the offer atomically.
//
// Returns ErrNoRidersAvailable when riders is empty and
// order.ErrOfferWindowClosed when the global dispatch budget is spent; in
// both cases the caller cancels the order.
func (s OfferSequencer) Next(ord *order.Order, riders []*rider.Rider, now time.Time) (*offer.Offer, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := ord.Status().ValidateBeginOffer(); err != nil {
		return nil, err
	}

	if len(riders) == 0 {
		return nil, ErrNoRidersAvailable
	}

	for _, rd := range riders {
		if err := rd.Validate(); err != nil {
			return nil, err
		}
	}

	ranked, err := s.eligibility.Rank(riders, ord.Pickup(), ord.Drop())
	if err != nil {
		return nil, err
	}
	next := ranked[0].Rider

	if _, err := ord.BeginOffer(now); err != nil {
		return nil, err
	}

	return offer.NewOffer(kernel.NewUUID(), ord.ID(), next.ID(), now)
}
