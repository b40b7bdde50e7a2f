package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrVerificationCodesAreNotConstructed is returned when using a
// VerificationCodes value that was not created via a constructor.
var ErrVerificationCodesAreNotConstructed = errs.NewValueIsRequiredError(
	"verification codes must be created via NewVerificationCodes or GenerateVerificationCodes")

var verificationCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// VerificationCodes is the pair of 4-digit codes generated once when a rider
// accepts an order. The requester shows the pickup code at handover and the
// recipient shows the delivery code on arrival; the two codes are always
// distinct so one cannot stand in for the other.
type VerificationCodes struct {
	pickupCode   string
	deliveryCode string

	guard guard.ConstructorGuard
}

// NewVerificationCodes creates a code pair from explicit values, typically
// when restoring from persistence. Both codes must be 4 decimal digits and
// must differ.
func NewVerificationCodes(pickupCode string, deliveryCode string) (VerificationCodes, error) {
	if !verificationCodePattern.MatchString(pickupCode) {
		return VerificationCodes{}, errs.NewValueIsInvalidErrorWithCause("pickup code",
			fmt.Errorf("%q is not a 4-digit code", pickupCode))
	}
	if !verificationCodePattern.MatchString(deliveryCode) {
		return VerificationCodes{}, errs.NewValueIsInvalidErrorWithCause("delivery code",
			fmt.Errorf("%q is not a 4-digit code", deliveryCode))
	}
	if pickupCode == deliveryCode {
		return VerificationCodes{}, errs.NewValueIsInvalidError("delivery code equals pickup code")
	}

	return VerificationCodes{
		pickupCode:   pickupCode,
		deliveryCode: deliveryCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// GenerateVerificationCodes creates a fresh random pair of distinct 4-digit
// codes in [1000,9999].
func GenerateVerificationCodes() (VerificationCodes, error) {
	pickup := randomCode()
	delivery := randomCode()
	for delivery == pickup {
		delivery = randomCode()
	}
	return NewVerificationCodes(pickup, delivery)
}

func randomCode() string {
	return fmt.Sprintf("%04d", 1000+rand.IntN(9000)) //nolint:gosec // display codes, not secrets
}

// Validate checks that the codes were created via a constructor.
func (v VerificationCodes) Validate() error {
	return v.guard.Validate(ErrVerificationCodesAreNotConstructed)
}

// PickupCode returns the code presented at package handover.
func (v VerificationCodes) PickupCode() string {
	return v.pickupCode
}

// DeliveryCode returns the code presented at delivery.
func (v VerificationCodes) DeliveryCode() string {
	return v.deliveryCode
}
