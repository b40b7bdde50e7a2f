// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// RiderDirectoryFactory provides access to the rider directory within a transaction.
	RiderDirectoryFactory interface {
		RiderDirectory() ports.RiderDirectory
	}

	// VerificationCodeRepoFactory provides access to the verification code
	// repository within a transaction.
	VerificationCodeRepoFactory interface {
		VerificationCodeRepository() ports.VerificationCodeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions for offer sequencing: the order, its
	// offer history, and the rider candidate set move together. "Set the
	// order assigned and create the offer row" must commit atomically, so
	// both repositories share one transaction.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		OfferRepoFactory
		RiderDirectoryFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// RespondUoW extends DispatchUoW with verification codes: acceptance
	// resolves offers and writes the code pair in one transaction.
	RespondUoW interface {
		TxManager
		OrderRepoFactory
		OfferRepoFactory
		RiderDirectoryFactory
		VerificationCodeRepoFactory
	}

	// RespondUoWFactory creates new respond unit of work instances.
	RespondUoWFactory interface {
		Create() RespondUoW
	}
)
