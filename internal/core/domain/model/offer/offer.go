package offer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not created
// through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")

// Offer records that a specific rider was given first refusal on a specific
// order. It doubles as the dispatch ledger: a rider with any offer row for an
// order, resolved or not, is never offered that order again, so the row's
// existence is as meaningful as its status.
type Offer struct {
	// id is the unique identifier for the offer
	id kernel.UUID

	// orderID references the order being offered
	orderID kernel.UUID

	// riderID references the rider holding (or having held) the offer
	riderID kernel.UUID

	// status is the offer's current outcome
	status Status

	// createdAt is when the offer was extended to the rider
	createdAt time.Time

	// loadedStatus is the status this aggregate was constructed or restored
	// with; persistence adapters condition their writes on it
	loadedStatus Status

	// isConstructed ensures the offer was created via a constructor
	isConstructed bool
}

// NewOffer creates a new Offer in Offered status.
func NewOffer(id, orderID, riderID kernel.UUID, createdAt time.Time) (*Offer, error) {
	return restore(id, orderID, riderID, Offered, createdAt)
}

// RestoreOffer reconstructs an Offer from persistence.
func RestoreOffer(id, orderID, riderID kernel.UUID, status Status, createdAt time.Time) (*Offer, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return restore(id, orderID, riderID, status, createdAt)
}

func restore(id, orderID, riderID kernel.UUID, status Status, createdAt time.Time) (*Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	if err := riderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("rider id", err)
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Offer{
		id:            id,
		orderID:       orderID,
		riderID:       riderID,
		status:        status,
		createdAt:     createdAt,
		loadedStatus:  status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Offer was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}

	return nil
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// OrderID returns the ID of the order being offered.
func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

// RiderID returns the ID of the rider the offer was extended to.
func (o *Offer) RiderID() kernel.UUID {
	return o.riderID
}

// Status returns the offer's current outcome.
func (o *Offer) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate was constructed or restored
// with. Repositories use it as the expected value in conditional updates so
// concurrent writers cannot both resolve the same offer.
func (o *Offer) LoadedStatus() Status {
	return o.loadedStatus
}

// CreatedAt returns when the offer was extended.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// Accept resolves the offer as taken by the rider.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Decline resolves the offer as turned down by the rider.
func (o *Offer) Decline() error {
	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Expire resolves the offer as lapsed without a response.
func (o *Offer) Expire() error {
	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
