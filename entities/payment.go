package entities

import (
	"github.com/google/uuid"
)

type PaymentTransaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	OrderID    string    `gorm:"uniqueIndex" json:"order_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"` // Pending, Settlement, Expired, Cancelled
	InvoiceURL string    `json:"invoice_url,omitempty"`

	Member *Member `gorm:"foreignKey:MemberID"`
	Timestamp
}
