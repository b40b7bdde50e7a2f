package otprepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVerificationCodeRepository implements VerificationCodeRepository using GORM.
type GormVerificationCodeRepository struct {
	db *gorm.DB
}

// NewGormVerificationCodeRepository creates a new GORM verification code repository.
func NewGormVerificationCodeRepository(db *gorm.DB) *GormVerificationCodeRepository {
	return &GormVerificationCodeRepository{db: db}
}

// Add persists the code pair for an accepted order.
func (r *GormVerificationCodeRepository) Add(
	ctx context.Context, orderID kernel.UUID, codes order.VerificationCodes,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := codes.Validate(); err != nil {
		return err
	}

	dto := VerificationCodeDTO{
		OrderID:      orderID.Bytes(),
		PickupCode:   codes.PickupCode(),
		DeliveryCode: codes.DeliveryCode(),
		CreatedAt:    time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves the code pair for an order.
func (r *GormVerificationCodeRepository) Get(
	ctx context.Context, orderID kernel.UUID,
) (order.VerificationCodes, error) {
	if err := orderID.Validate(); err != nil {
		return order.VerificationCodes{}, err
	}

	var dto VerificationCodeDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.VerificationCodes{}, errs.NewObjectNotFoundError(
				"verification codes", orderID.String())
		}
		return order.VerificationCodes{}, err
	}

	return toDomain(dto)
}
