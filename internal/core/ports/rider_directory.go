// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
)

// RiderDirectory is the read-only view of the shared users table that
// dispatch consults for candidates. Rider rows are owned and mutated by an
// external location-reporting service; dispatch only reads snapshots.
type RiderDirectory interface {
	// GetAvailable retrieves every online rider with a known position whose
	// ID is not in excluded. The exclusion set holds riders that already
	// received an offer for the order being dispatched, so they are never
	// offered it twice.
	GetAvailable(ctx context.Context, excluded []kernel.UUID) ([]*rider.Rider, error)

	// Get retrieves a single rider snapshot by ID.
	// Returns an ObjectNotFoundError if the rider does not exist.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}
