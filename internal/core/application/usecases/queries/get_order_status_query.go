// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain aggregates and read the database
// directly, returning plain response structs shaped for their callers.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the dispatch status of a single order: where
// it is in its lifecycle, which rider (if any) owns it, and how much of the
// current offer window remains. Requesters poll this while dispatch runs.
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status query for one order.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusQueryResponse is the dispatch snapshot of one order.
// RemainingSeconds is the time left in the outstanding offer window, zero
// when no offer is outstanding or the window already lapsed.
type GetOrderStatusQueryResponse struct {
	ID               kernel.UUID
	Status           string
	DriverID         *kernel.UUID
	OfferExpiresAt   *time.Time
	RemainingSeconds int64
}
