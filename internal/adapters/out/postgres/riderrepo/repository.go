package riderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRiderDirectory implements RiderDirectory using GORM.
type GormRiderDirectory struct {
	db *gorm.DB
}

// NewGormRiderDirectory creates a new GORM rider directory.
func NewGormRiderDirectory(db *gorm.DB) *GormRiderDirectory {
	return &GormRiderDirectory{db: db}
}

// GetAvailable retrieves every online rider with a known position whose ID is
// not in excluded.
func (r *GormRiderDirectory) GetAvailable(
	ctx context.Context, excluded []kernel.UUID,
) ([]*rider.Rider, error) {
	query := r.db.WithContext(ctx).
		Where("role = ? AND is_online AND lat IS NOT NULL AND lng IS NOT NULL", roleRider)

	if len(excluded) > 0 {
		ids := make([]uuid.UUID, 0, len(excluded))
		for _, id := range excluded {
			if err := id.Validate(); err != nil {
				return nil, err
			}
			ids = append(ids, id.Bytes())
		}
		query = query.Where("id NOT IN ?", ids)
	}

	var dtos []UserDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		rd, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rd)
	}

	return riders, nil
}

// Get retrieves a single rider snapshot by ID.
func (r *GormRiderDirectory) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND role = ?", id.Bytes(), roleRider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
