package entities

import (
	"time"

	"github.com/google/uuid"
)

type Meal struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID  uuid.UUID  `gorm:"uniqueIndex:idx_meal_slot" json:"household_id"`
	Day          int        `gorm:"uniqueIndex:idx_meal_slot" json:"day"`  // offset from today
	Type         string     `gorm:"uniqueIndex:idx_meal_slot" json:"type"` // pranzo, cena
	Name         string     `json:"name,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	ChefID       *uuid.UUID `json:"chef_id,omitempty"`
	RecipeID     *uuid.UUID `json:"recipe_id,omitempty"`
	Participants string     `gorm:"type:text" json:"participants"`
	Ingredients  string     `gorm:"type:text" json:"ingredients"` // JSON array, used when no recipe backs the slot
	Servings     int        `json:"servings"`
	IsEmpty      bool       `json:"is_empty"`
	IsLeftover   bool       `json:"is_leftover"`
	CookedAt     *time.Time `json:"cooked_at,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Recipe    *Recipe    `gorm:"foreignKey:RecipeID"`
	Timestamp
}
