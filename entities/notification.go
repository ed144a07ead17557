package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID uuid.UUID `json:"member_id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Type     string    `json:"type"` // expiry, shopping, meal, waste
	Icon     string    `json:"icon,omitempty"`
	IconBg   string    `json:"icon_bg,omitempty"`
	IsRead   bool      `json:"is_read"`

	Member *Member `gorm:"foreignKey:MemberID"`
	Timestamp
}
