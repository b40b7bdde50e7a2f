package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVerificationCodesQueryHandler reads an order's code pair straight from
// the database.
type GetVerificationCodesQueryHandler struct {
	db *gorm.DB
}

// NewGetVerificationCodesQueryHandler creates a handler for code pair queries.
// Requires a GORM database connection for query execution.
func NewGetVerificationCodesQueryHandler(db *gorm.DB) GetVerificationCodesQueryHandler {
	return GetVerificationCodesQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// has no codes, which is the case for every order nobody accepted yet.
func (h GetVerificationCodesQueryHandler) Handle(
	ctx context.Context,
	query GetVerificationCodesQuery,
) (GetVerificationCodesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVerificationCodesQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			pickup_code,
			delivery_code
		FROM order_otps
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	var pickupCode, deliveryCode string
	err := row.Scan(&pickupCode, &deliveryCode)
	if errors.Is(err, sql.ErrNoRows) {
		return GetVerificationCodesQueryResponse{}, errs.NewObjectNotFoundError(
			"verification codes", query.OrderID())
	}
	if err != nil {
		return GetVerificationCodesQueryResponse{}, err
	}

	return GetVerificationCodesQueryResponse{
		OrderID:      query.OrderID(),
		PickupCode:   pickupCode,
		DeliveryCode: deliveryCode,
	}, nil
}
