package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists a rider's accepted, undelivered orders
// straight from the database, newest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for rider workload queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the workload query. An unknown rider simply gets an empty
// result.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup_lat,
			pickup_lng,
			drop_lat,
			drop_lng,
			package_details,
			distance_km,
			rider_earnings,
			created_at
		FROM orders
		WHERE driver_id = ? AND status = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes(), order.Accepted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                 GetActiveOrdersQueryResponse
			id                   uuid.UUID
			pickupLat, pickupLng float64
			dropLat, dropLng     float64
			packageDetails       string
			distanceKm           float64
			riderEarnings        int
			createdAt            time.Time
		)

		err = rows.Scan(
			&id,
			&pickupLat, &pickupLng,
			&dropLat, &dropLng,
			&packageDetails,
			&distanceKm,
			&riderEarnings,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		pickup, geoErr := kernel.NewGeoPoint(pickupLat, pickupLng)
		if geoErr != nil {
			return nil, geoErr
		}
		drop, geoErr := kernel.NewGeoPoint(dropLat, dropLng)
		if geoErr != nil {
			return nil, geoErr
		}
		resp.Pickup = pickup
		resp.Drop = drop
		resp.PackageDetails = packageDetails
		resp.DistanceKm = distanceKm
		resp.RiderEarnings = riderEarnings
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
