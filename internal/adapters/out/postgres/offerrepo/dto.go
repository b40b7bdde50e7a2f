// Package offerrepo persists offer records, the append-only per-rider history
// of who was asked to take each order and how they responded.
package offerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer records.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	RiderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(16);index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for offer records.
func (OfferDTO) TableName() string {
	return "order_offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		RiderID:   aggregate.RiderID().Bytes(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	status, err := offer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, orderID, riderID, status, dto.CreatedAt)
}
