package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the orders a rider has accepted but not yet
// delivered. Rider apps show this as the current workload.
type GetActiveOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates an active-orders query for one rider.
func NewGetActiveOrdersQuery(driverID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}

	return GetActiveOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// DriverID returns the rider whose workload is requested.
func (q GetActiveOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetActiveOrdersQueryResponse is one accepted, undelivered order in a
// rider's workload.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID
	Pickup         kernel.GeoPoint
	Drop           kernel.GeoPoint
	PackageDetails string
	DistanceKm     float64
	RiderEarnings  int
	CreatedAt      time.Time
}
