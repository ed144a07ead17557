package entities

import (
	"time"

	"github.com/google/uuid"
)

type WasteStats struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID      uuid.UUID `gorm:"uniqueIndex" json:"household_id"`
	DaysWithoutWaste int       `json:"days_without_waste"`
	Goal             int       `json:"goal"`
	TotalWastedValue float64   `json:"total_wasted_value"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type WasteEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	MemberID    uuid.UUID `json:"member_id"`
	ProductName string    `json:"product_name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Reason      string    `json:"reason"` // expired, discarded
	Value       float64   `json:"value"`
	WastedAt    time.Time `json:"wasted_at"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Member    *Member    `gorm:"foreignKey:MemberID"`
	Timestamp
}
