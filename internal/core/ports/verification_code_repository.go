package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// VerificationCodeRepository persists the per-order code pair created when a
// rider accepts. Codes are written exactly once, in the same transaction as
// the acceptance itself.
type VerificationCodeRepository interface {
	// Add persists the code pair for an accepted order.
	Add(ctx context.Context, orderID kernel.UUID, codes order.VerificationCodes) error

	// Get retrieves the code pair for an order.
	// Returns an ObjectNotFoundError if none was generated.
	Get(ctx context.Context, orderID kernel.UUID) (order.VerificationCodes, error)
}
