package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	// OfferWindow is how long a single rider holds an exclusive offer
	// before dispatch moves on to the next candidate.
	OfferWindow = 2 * time.Minute

	// DispatchDeadline is the global budget measured from order creation.
	// An order that nobody accepted within this window is cancelled
	// outright, and no offer deadline may ever extend past it.
	DispatchDeadline = 30 * time.Minute
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ErrOfferWindowClosed is returned by BeginOffer when the global dispatch
// deadline leaves no time for another offer.
var ErrOfferWindowClosed = errors.New("no time left before the dispatch deadline")

// Order is the aggregate root for a delivery request. It owns the dispatch
// lifecycle: which rider (if any) holds the current offer, when that offer
// expires, and how the order terminates.
//
// Invariants:
//   - driver is set iff status is Accepted or Delivered
//   - an offer deadline is set iff status is Assigned
//   - the commercial fields (distance, fare) are fixed at creation
//   - no offer deadline extends past createdAt + DispatchDeadline
//
// All time-dependent operations take the current instant as a parameter and
// compare against stored timestamps, so behavior survives process restarts.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// requesterID identifies the user who placed the order
	requesterID kernel.UUID

	// driverID is the accepting rider's ID (nil until acceptance)
	driverID *kernel.UUID

	// pickup and drop are the geocoded endpoints of the trip
	pickup kernel.GeoPoint
	drop   kernel.GeoPoint

	// packageDetails is the free-form package description from the requester
	packageDetails string

	// distanceKm is the pickup-to-drop great-circle distance, fixed at creation
	distanceKm float64

	// fare is the commercial breakdown, fixed at creation
	fare Fare

	// status is the current state in the dispatch lifecycle
	status Status

	// offerExpiresAt is the deadline of the outstanding offer (Assigned only)
	offerExpiresAt *time.Time

	// createdAt anchors the global dispatch deadline
	createdAt time.Time

	// loadedStatus is the status this aggregate was constructed or restored
	// with; persistence adapters condition their writes on it
	loadedStatus Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The distance and fare are
// computed once by the caller (see services.FareCalculator) and never change
// afterwards. createdAt anchors the 30-minute global deadline and must not
// be the zero time.
func NewOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	packageDetails string,
	distanceKm float64,
	fare Fare,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		packageDetails: packageDetails,
		status:         Pending,
		loadedStatus:   Pending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setPickup(pickup),
		o.setDrop(drop),
		o.setDistanceKm(distanceKm),
		o.setFare(fare),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, driver assignment, and outstanding offer deadline. It enforces the
// cross-field invariants that NewOrder establishes by construction: a driver
// only on Accepted/Delivered orders, an offer deadline only on Assigned ones.
func RestoreOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	driverID *kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	packageDetails string,
	distanceKm float64,
	fare Fare,
	status Status,
	offerExpiresAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveOfferExpiry(offerExpiresAt != nil); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		packageDetails: packageDetails,
		status:         status,
		loadedStatus:   status,
		driverID:       driverID,
		offerExpiresAt: offerExpiresAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setPickup(pickup),
		o.setDrop(drop),
		o.setDistanceKm(distanceKm),
		o.setFare(fare),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the ID of the user who placed the order.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// Driver returns the accepting rider's ID, or nil before acceptance.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Pickup returns the pickup coordinate.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// Drop returns the drop-off coordinate.
func (o *Order) Drop() kernel.GeoPoint {
	return o.drop
}

// PackageDetails returns the requester's package description.
func (o *Order) PackageDetails() string {
	return o.packageDetails
}

// DistanceKm returns the pickup-to-drop distance fixed at creation.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// Fare returns the commercial breakdown fixed at creation.
func (o *Order) Fare() Fare {
	return o.fare
}

// Status returns the current dispatch status.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate was constructed or restored
// with. Repositories use it as the expected value in conditional updates so
// concurrent writers cannot both advance the same order.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// OfferExpiresAt returns the outstanding offer's deadline, or nil when no
// offer is outstanding.
func (o *Order) OfferExpiresAt() *time.Time {
	return o.offerExpiresAt
}

// CreatedAt returns the creation timestamp anchoring the global deadline.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// GlobalDeadline returns the instant after which the order can no longer be
// dispatched: createdAt + DispatchDeadline.
func (o *Order) GlobalDeadline() time.Time {
	return o.createdAt.Add(DispatchDeadline)
}

// PastGlobalDeadline reports whether the global dispatch budget is spent.
func (o *Order) PastGlobalDeadline(now time.Time) bool {
	return now.After(o.GlobalDeadline())
}

// OfferDue reports whether the outstanding offer's deadline has passed.
// Always false outside Assigned status.
func (o *Order) OfferDue(now time.Time) bool {
	return o.status == Assigned && o.offerExpiresAt != nil && now.After(*o.offerExpiresAt)
}

// BeginOffer opens a new time-boxed offer window and moves the order to
// Assigned. The deadline is now + OfferWindow, clamped so it never extends
// past the global deadline; if the remaining global budget is zero or
// negative the transition fails with ErrOfferWindowClosed.
//
// Valid from Pending (first offer) and Assigned (progression to the next
// rider after a decline or expiry). Returns the offer deadline.
func (o *Order) BeginOffer(now time.Time) (time.Time, error) {
	newStatus, err := o.status.BeginOffer()
	if err != nil {
		return time.Time{}, err
	}

	expiresAt := now.Add(OfferWindow)
	if deadline := o.GlobalDeadline(); expiresAt.After(deadline) {
		expiresAt = deadline
	}
	if !expiresAt.After(now) {
		return time.Time{}, ErrOfferWindowClosed
	}

	o.status = newStatus
	o.offerExpiresAt = &expiresAt
	return expiresAt, nil
}

// Accept records the accepting rider and moves the order to Accepted,
// clearing the offer deadline. Valid only from Assigned.
func (o *Order) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.offerExpiresAt = nil
	return nil
}

// Deliver marks the accepted order as delivered. Valid only from Accepted.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel terminates dispatch without a driver, clearing any offer deadline.
// Valid from Pending and Assigned.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.offerExpiresAt = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester id", err)
	}
	o.requesterID = id
	return nil
}

func (o *Order) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDrop(drop kernel.GeoPoint) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop", err)
	}
	o.drop = drop
	return nil
}

func (o *Order) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is negative", distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}

func (o *Order) setFare(fare Fare) error {
	if err := fare.Validate(); err != nil {
		return err
	}
	o.fare = fare
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
