package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer records.
// Offers are append-only per (order, rider) pair: they are added once and
// only their status changes afterwards.
type OfferRepository interface {
	// Add persists a new offer record.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists a status change to an existing offer.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// GetAllForOrder retrieves every offer ever extended for the order,
	// resolved or not. The rider IDs in the result form the exclusion set
	// for the next offer.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.Offer, error)

	// GetActiveForOrder retrieves the single outstanding offer for the
	// order. Returns an ObjectNotFoundError when no offer is outstanding.
	GetActiveForOrder(ctx context.Context, orderID kernel.UUID) (*offer.Offer, error)

	// GetByOrderAndRider retrieves the offer extended to a specific rider
	// for a specific order. Returns an ObjectNotFoundError if the rider
	// never held one.
	GetByOrderAndRider(ctx context.Context, orderID, riderID kernel.UUID) (*offer.Offer, error)
}
