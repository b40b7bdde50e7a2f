package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads one order's dispatch snapshot straight
// from the database.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status query. Returns an ObjectNotFoundError for an
// unknown order ID.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			driver_id,
			offer_expires_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id             uuid.UUID
		status         string
		driverID       *uuid.UUID
		offerExpiresAt *time.Time
	)
	err := row.Scan(&id, &status, &driverID, &offerExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	resp := GetOrderStatusQueryResponse{Status: status, OfferExpiresAt: offerExpiresAt}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	resp.ID = orderID

	if driverID != nil {
		driver, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetOrderStatusQueryResponse{}, idErr
		}
		resp.DriverID = &driver
	}

	if offerExpiresAt != nil {
		if remaining := time.Until(*offerExpiresAt); remaining > 0 {
			resp.RemainingSeconds = int64(remaining.Seconds())
		}
	}

	return resp, nil
}
