package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrFareIsNotConstructed is returned when using a Fare that was not created
// via the NewFare constructor.
var ErrFareIsNotConstructed = errs.NewValueIsRequiredError(
	"fare must be created via NewFare constructor")

// Fare is the immutable commercial breakdown of an order, fixed once at
// creation time: what the requester pays (total), what the platform keeps
// (commission), and what the rider earns. All amounts are whole currency
// units and rider earnings plus commission always equal the total exactly.
type Fare struct { //nolint:recvcheck //using for validation
	totalPrice    int
	commission    int
	riderEarnings int

	guard guard.ConstructorGuard
}

// NewFare creates a Fare from its three components. All amounts must be
// non-negative and totalPrice must equal commission + riderEarnings.
func NewFare(totalPrice int, commission int, riderEarnings int) (Fare, error) {
	if totalPrice < 0 {
		return Fare{}, errs.NewValueIsInvalidErrorWithCause("total price",
			fmt.Errorf("%d is negative", totalPrice))
	}
	if commission < 0 {
		return Fare{}, errs.NewValueIsInvalidErrorWithCause("commission",
			fmt.Errorf("%d is negative", commission))
	}
	if riderEarnings < 0 {
		return Fare{}, errs.NewValueIsInvalidErrorWithCause("rider earnings",
			fmt.Errorf("%d is negative", riderEarnings))
	}
	if commission+riderEarnings != totalPrice {
		return Fare{}, errs.NewValueIsInvalidErrorWithCause("fare",
			fmt.Errorf("commission %d + rider earnings %d != total %d",
				commission, riderEarnings, totalPrice))
	}

	return Fare{
		totalPrice:    totalPrice,
		commission:    commission,
		riderEarnings: riderEarnings,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Fare was created via NewFare.
func (f Fare) Validate() error {
	return f.guard.Validate(ErrFareIsNotConstructed)
}

// TotalPrice returns the amount the requester pays, in whole currency units.
func (f Fare) TotalPrice() int {
	return f.totalPrice
}

// Commission returns the platform's cut of the total price.
func (f Fare) Commission() int {
	return f.commission
}

// RiderEarnings returns the rider's share: total price minus commission.
func (f Fare) RiderEarnings() int {
	return f.riderEarnings
}
