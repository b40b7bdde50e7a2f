package offer

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the outcome of a single rider's offer. An offer starts
// Offered and resolves exactly once, to Accepted, Declined, or Expired; the
// three resolved states are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Offered means the rider currently holds the offer and has not responded.
	Offered

	// Accepted means the rider took the delivery.
	Accepted

	// Declined means the rider explicitly turned the offer down.
	Declined

	// Expired means the offer window lapsed, or a sibling offer on the same
	// order was accepted first.
	Expired
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Offered:  "offered",
		Accepted: "accepted",
		Declined: "declined",
		Expired:  "expired",
	}
}

// StatusFromString maps a persisted status string back to its Status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid offer status", s))
}

// Validate checks that the Status is one of the four valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase persisted form of the status.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsResolved reports whether the offer reached a terminal outcome.
func (s Status) IsResolved() bool {
	return s == Accepted || s == Declined || s == Expired
}

func (s Status) resolve(to Status) (Status, error) {
	if s != Offered {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s offer cannot move to %s", s.String(), to.String()))
	}
	return to, nil
}

// Accept transitions to Accepted. Valid only from Offered.
func (s Status) Accept() (Status, error) {
	return s.resolve(Accepted)
}

// Decline transitions to Declined. Valid only from Offered.
func (s Status) Decline() (Status, error) {
	return s.resolve(Declined)
}

// Expire transitions to Expired. Valid only from Offered.
func (s Status) Expire() (Status, error) {
	return s.resolve(Expired)
}
