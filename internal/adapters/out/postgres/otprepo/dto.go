// Package otprepo persists the per-order verification code pair created at
// acceptance time.
package otprepo

import (
	"time"

	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// VerificationCodeDTO represents the database structure for the code pair.
// One row per order, written once in the acceptance transaction.
type VerificationCodeDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickupCode   string    `gorm:"type:varchar(4)"`
	DeliveryCode string    `gorm:"type:varchar(4)"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for verification codes.
func (VerificationCodeDTO) TableName() string {
	return "order_otps"
}

func toDomain(dto VerificationCodeDTO) (order.VerificationCodes, error) {
	return order.NewVerificationCodes(dto.PickupCode, dto.DeliveryCode)
}
