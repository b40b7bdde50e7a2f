package ports

import (
	"context"

	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
)

// OfferNotifier publishes dispatch events for external delivery channels
// (rider apps, SMS gateways). Notification is best-effort and happens after
// the transaction commits: a failed publish never rolls dispatch back, the
// expiry sweep re-drives unanswered offers regardless.
type OfferNotifier interface {
	// NotifyOfferCreated announces that a rider now holds the offer for an
	// order and until when.
	NotifyOfferCreated(ctx context.Context, aggregate *order.Order, created *offer.Offer) error
}
