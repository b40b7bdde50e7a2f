package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetVerificationCodesQueryIsNotConstructed = errors.New(
	"GetVerificationCodesQuery must be created via NewGetVerificationCodesQuery constructor",
)

// GetVerificationCodesQuery requests the code pair of an accepted order. The
// requester shows the pickup code at handover; the delivery code is verified
// on arrival.
type GetVerificationCodesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVerificationCodesQuery creates a query for an order's code pair.
func NewGetVerificationCodesQuery(orderID kernel.UUID) (GetVerificationCodesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetVerificationCodesQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return GetVerificationCodesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVerificationCodesQuery) Validate() error {
	return q.guard.Validate(ErrGetVerificationCodesQueryIsNotConstructed)
}

// OrderID returns the order whose codes are requested.
func (q GetVerificationCodesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetVerificationCodesQueryResponse carries the order's code pair.
type GetVerificationCodesQueryResponse struct {
	OrderID      kernel.UUID
	PickupCode   string
	DeliveryCode string
}
