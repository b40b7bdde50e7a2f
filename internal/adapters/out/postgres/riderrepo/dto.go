// Package riderrepo is the read-only adapter over the shared users table.
// Dispatch never writes here; rider rows are owned by the external
// location-reporting service and consumed as snapshots.
package riderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// roleRider is the role value marking courier rows in the users table.
const roleRider = "rider"

// UserDTO mirrors the users table. Lat and Lng are nullable: a rider that
// never reported a position has no coordinates and is never dispatched.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role     string    `gorm:"type:varchar(16);index"`
	IsOnline bool
	Lat      *float64
	Lng      *float64
	Name     string
	Phone    string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	if dto.Lat == nil || dto.Lng == nil {
		return nil, errs.NewValueIsRequiredError("rider location")
	}

	location, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
	if err != nil {
		return nil, err
	}

	return rider.NewRider(id, dto.Name, dto.Phone, location)
}
