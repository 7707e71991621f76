package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice statuses form a closed set; anything else is rejected at the
// boundary. Transitions between them are unconstrained.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Status    string    `gorm:"not null;default:'draft'" json:"status"`
	LogoURL   *string   `json:"logo_url"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"client"`

	// Items are exclusively owned by the invoice and deleted with it.
	// Position preserves insertion order for display.
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
}

type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"invoice_id"`
	ServiceName string          `gorm:"not null" json:"service_name"`
	Description string          `json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate"`
	Position    int             `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// Amount is the derived line value, never stored.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.Rate.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
