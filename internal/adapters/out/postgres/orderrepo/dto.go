// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase string form so the table stays readable
// and the conditional-update predicates match what operators see in psql.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	PickupLat      float64
	PickupLng      float64
	DropLat        float64
	DropLng        float64
	PackageDetails string
	DistanceKm     float64
	TotalPrice     int
	Commission     int
	RiderEarnings  int
	Status         string `gorm:"type:varchar(16);index"`
	OfferExpiresAt *time.Time
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	fare := aggregate.Fare()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.RequesterID().Bytes(),
		DriverID:       driverID,
		PickupLat:      aggregate.Pickup().Lat(),
		PickupLng:      aggregate.Pickup().Lng(),
		DropLat:        aggregate.Drop().Lat(),
		DropLng:        aggregate.Drop().Lng(),
		PackageDetails: aggregate.PackageDetails(),
		DistanceKm:     aggregate.DistanceKm(),
		TotalPrice:     fare.TotalPrice(),
		Commission:     fare.Commission(),
		RiderEarnings:  fare.RiderEarnings(),
		Status:         aggregate.Status().String(),
		OfferExpiresAt: aggregate.OfferExpiresAt(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, driver assignment,
// and the outstanding offer deadline using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	drop, err := kernel.NewGeoPoint(dto.DropLat, dto.DropLng)
	if err != nil {
		return nil, err
	}

	fare, err := order.NewFare(dto.TotalPrice, dto.Commission, dto.RiderEarnings)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, requesterID, driverID,
		pickup, drop,
		dto.PackageDetails, dto.DistanceKm, fare,
		status, dto.OfferExpiresAt, dto.CreatedAt,
	)
}
