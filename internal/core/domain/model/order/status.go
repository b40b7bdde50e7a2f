package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Assigned ──> Accepted ──> Delivered
//	   │            │ │
//	   │            │ └──────┐ (re-entered on each new offer)
//	   │            v        │
//	   └──────> Cancelled <──┘
//
// Pending and Assigned may cancel (no riders left, or the 30-minute global
// deadline passed). Assigned re-enters itself each time the outstanding offer
// moves to the next rider. Delivered and Cancelled are terminal; Accepted
// ends dispatch but still transitions to Delivered.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order exists but no rider has an
	// outstanding offer yet.
	Pending

	// Assigned means exactly one rider currently holds a time-boxed offer.
	Assigned

	// Accepted means a rider accepted the offer and owns the delivery.
	Accepted

	// Delivered means the accepted rider completed the delivery.
	Delivered

	// Cancelled means dispatch gave up: every eligible rider was exhausted
	// or the global deadline passed without acceptance.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Accepted:  "accepted",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Accepted:  "accepted",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString maps a persisted status string back to its Status value.
// Returns an error for unrecognized strings, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase persisted form of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible. Accepted
// is not terminal: it still moves to Delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateBeginOffer checks whether a new offer may be opened from the
// current status without performing the transition. Valid from Pending
// (first offer) and Assigned (progression to the next rider).
func (s Status) ValidateBeginOffer() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to offer from", s.String()))
	}
	return nil
}

// ValidateCanHaveDriver validates consistency between status and driver
// assignment: only Accepted and Delivered orders carry a driver, and both
// must carry one.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != Accepted && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}

	if !driver && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()))
	}

	return nil
}

// ValidateCanHaveOfferExpiry validates consistency between status and the
// offer deadline: only Assigned orders carry one, and Assigned must.
func (s Status) ValidateCanHaveOfferExpiry(expiry bool) error {
	if expiry && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have an offer deadline", s.String()))
	}

	if !expiry && s == Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no offer deadline", s.String()))
	}

	return nil
}

// BeginOffer transitions to Assigned. Valid from Pending and Assigned.
func (s Status) BeginOffer() (Status, error) {
	if err := s.ValidateBeginOffer(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Accept transitions to Accepted. Valid only from Assigned.
func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", s.String()))
	}

	return Accepted, nil
}

// Deliver transitions to Delivered. Valid only from Accepted.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}

	return Delivered, nil
}

// Cancel transitions to Cancelled. Valid from Pending and Assigned.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}

	return Cancelled, nil
}
