package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a catalog entry. Invoice items may copy its description and
// rate at creation time but keep no live reference to it.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Rate        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate"`
	CreatedAt   time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
