package services

import (
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// baseFare is the flat charge covering the first fareBaseKm kilometers of any
// trip. It applies in full even to zero-length trips.
const (
	baseFare   = 30.0
	fareBaseKm = 2.0
)

// fareTier is one segment of the stepped tariff. ratePerKm applies only to
// the portion of the trip falling inside (lower, upperKm]; commissionRate is
// used for the whole fare when the trip's total distance ends in this tier.
type fareTier struct {
	upperKm        float64
	ratePerKm      float64
	commissionRate float64
}

// getFareTiers returns the tariff, cumulative above the flat base segment.
// The commission rate is not blended: the tier containing the trip's upper
// end sets the rate for the entire fare.
func getFareTiers() []fareTier {
	return []fareTier{
		{upperKm: fareBaseKm, ratePerKm: 0, commissionRate: 0.15},
		{upperKm: 8, ratePerKm: 5.5, commissionRate: 0.15},
		{upperKm: 15, ratePerKm: 6.0, commissionRate: 0.15},
		{upperKm: 25, ratePerKm: 6.5, commissionRate: 0.12},
		{upperKm: 40, ratePerKm: 7.0, commissionRate: 0.12},
		{upperKm: 65, ratePerKm: 6.0, commissionRate: 0.10},
		{upperKm: math.Inf(1), ratePerKm: 6.0, commissionRate: 0.10},
	}
}

// FareCalculator is a domain service that prices a trip from its distance
// using the fixed distance-tier tariff. The fare is computed exactly once at
// order creation and is immutable afterwards.
//
// Pricing rules:
//   - A flat base fare covers the first 2 km and is always charged
//   - Each further tier's per-km rate applies only to the distance within it
//   - The total is rounded to the nearest whole currency unit first
//   - Commission is then taken from the rounded total at the rate of the
//     tier containing the trip's full distance, and rounded itself
//   - Rider earnings are the exact remainder, so the three parts always add up
type FareCalculator struct{}

// NewFareCalculator creates a new FareCalculator instance.
func NewFareCalculator() FareCalculator {
	return FareCalculator{}
}

// Calculate prices a trip of distanceKm kilometers. distanceKm must be a
// finite non-negative number.
func (f FareCalculator) Calculate(distanceKm float64) (order.Fare, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return order.Fare{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is not a valid trip distance", distanceKm))
	}

	raw := baseFare
	lower := fareBaseKm
	for _, tier := range getFareTiers()[1:] {
		if distanceKm <= lower {
			break
		}
		portion := math.Min(distanceKm, tier.upperKm) - lower
		raw += portion * tier.ratePerKm
		lower = tier.upperKm
	}

	total := int(math.Round(raw))
	commission := int(math.Round(f.commissionRate(distanceKm) * float64(total)))

	return order.NewFare(total, commission, total-commission)
}

// commissionRate returns the rate of the tier containing the trip's upper end.
func (f FareCalculator) commissionRate(distanceKm float64) float64 {
	tiers := getFareTiers()
	for _, tier := range tiers {
		if distanceKm <= tier.upperKm {
			return tier.commissionRate
		}
	}
	return tiers[len(tiers)-1].commissionRate
}
