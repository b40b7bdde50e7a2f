package services

import (
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
)

const (
	// maxPickupDistanceKm bounds how far from the pickup an on-route rider
	// may be.
	maxPickupDistanceKm = 5.0

	// maxDetourFactor bounds the total path through the rider's position
	// relative to the direct pickup-to-drop route.
	maxDetourFactor = 1.5
)

// Candidate is a rider annotated with its dispatch-ranking attributes.
type Candidate struct {
	Rider            *rider.Rider
	OnRoute          bool
	DistanceToPickup float64
}

// RouteEligibility is a domain service that classifies riders relative to an
// order's route and ranks them for offer sequencing.
//
// A rider is on-route when it is within 5 km of the pickup and the path
// rider -> pickup -> drop -> rider's side of drop stays within 1.5 times the
// direct route, i.e. serving the order is a small marginal detour. Off-route
// riders are still eligible, they just rank behind every on-route rider.
type RouteEligibility struct{}

// NewRouteEligibility creates a new RouteEligibility instance.
func NewRouteEligibility() RouteEligibility {
	return RouteEligibility{}
}

// Assess classifies a single rider position against the order's route and
// returns its on-route flag together with the distance to pickup used for
// ranking. All three points must be valid.
func (r RouteEligibility) Assess(position, pickup, drop kernel.GeoPoint) (bool, float64, error) {
	dPickup, err := position.DistanceKm(pickup)
	if err != nil {
		return false, 0, err
	}
	route, err := pickup.DistanceKm(drop)
	if err != nil {
		return false, 0, err
	}
	dDrop, err := position.DistanceKm(drop)
	if err != nil {
		return false, 0, err
	}

	onRoute := dPickup <= maxPickupDistanceKm &&
		dPickup+route+dDrop <= maxDetourFactor*route

	return onRoute, dPickup, nil
}

// Rank orders the riders for offer sequencing: on-route riders first by
// ascending distance to pickup, then off-route riders the same way. Ties are
// broken by rider ID so the sequence is deterministic across retries.
func (r RouteEligibility) Rank(
	riders []*rider.Rider, pickup, drop kernel.GeoPoint,
) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(riders))
	for _, rd := range riders {
		onRoute, dPickup, err := r.Assess(rd.Location(), pickup, drop)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Rider:            rd,
			OnRoute:          onRoute,
			DistanceToPickup: dPickup,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.OnRoute != b.OnRoute {
			return a.OnRoute
		}
		if a.DistanceToPickup != b.DistanceToPickup {
			return a.DistanceToPickup < b.DistanceToPickup
		}
		return a.Rider.ID().String() < b.Rider.ID().String()
	})

	return candidates, nil
}
