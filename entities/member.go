package entities

import (
	"github.com/google/uuid"
)

type Household struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `gorm:"uniqueIndex" json:"invite_code"`

	Members []*Member `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type Member struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	Avatar      string    `json:"avatar,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
