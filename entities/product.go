package entities

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Category    string     `json:"category"` // frigo, dispensa, freezer
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	Owners      string     `gorm:"type:text" json:"owners"` // JSON array of member ids, or "shared"
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Source      string     `json:"source"` // Manual, Receipt, Checkout

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type ReceiptScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID    uuid.UUID `json:"member_id"`
	HouseholdID uuid.UUID `json:"household_id"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"` // Pending, Processed, Failed, Completed
	OcrResults  string    `json:"ocr_results,omitempty" gorm:"type:text"`

	Member *Member `gorm:"foreignKey:MemberID"`
	Timestamp
}
