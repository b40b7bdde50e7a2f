package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditioned on the status the aggregate was loaded with: if a
	// concurrent writer advanced the order first, Update returns a
	// ConflictError and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInAssignedStatus retrieves all orders with an outstanding offer.
	// The expiry sweep iterates these to advance overdue offers.
	GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveForDriver retrieves accepted, undelivered orders held by
	// the given rider.
	GetAllActiveForDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
