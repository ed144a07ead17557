package entities

import (
	"github.com/google/uuid"
)

type ShoppingItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Department  string    `json:"department"` // ortofrutta, freschi, dispensa, casa
	Owners      string    `gorm:"type:text" json:"owners"`
	IsChecked   bool      `json:"is_checked"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
