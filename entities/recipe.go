package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID `json:"household_id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon,omitempty"`
	Servings        int       `json:"servings"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	Ingredients     string    `json:"ingredients" gorm:"type:text"`  // JSON array of {name, qty, unit, product_id?}
	Steps           string    `json:"steps" gorm:"type:text"`        // JSON array of strings
	Participants    string    `json:"participants" gorm:"type:text"` // JSON array of member ids

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
