package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMeals   = "meal plan retrieved successfully"
	MessageSuccessUpdateSlot = "meal slot updated successfully"
	MessageSuccessCookMeal   = "meal cooked successfully"

	MessageFailedGetMeals   = "failed to retrieve meal plan"
	MessageFailedUpdateSlot = "failed to update meal slot"
	MessageFailedCookMeal   = "failed to cook meal"

	ErrMealNotFound      = errors.New("meal not found")
	ErrMealSlotEmpty     = errors.New("meal slot is empty")
	ErrMealTypeInvalid   = errors.New("meal type must be pranzo or cena")
	ErrMealNoIngredients = errors.New("meal has no ingredients to consume")
)

const (
	MealTypePranzo = "pranzo"
	MealTypeCena   = "cena"
)

type (
	UpdateMealSlotRequest struct {
		Day          int             `json:"day" validate:"gte=0"`
		Type         string          `json:"type" validate:"required,oneof=pranzo cena"`
		Name         string          `json:"name" validate:"omitempty"`
		Icon         string          `json:"icon" validate:"omitempty"`
		ChefID       string          `json:"chef_id" validate:"omitempty,uuid"`
		RecipeID     string          `json:"recipe_id" validate:"omitempty,uuid"`
		Participants []string        `json:"participants" validate:"omitempty"`
		Servings     int             `json:"servings" validate:"omitempty,gte=1"`
		IsLeftover   bool            `json:"is_leftover"`
		Ingredients  []IngredientRef `json:"ingredients" validate:"omitempty,dive"`
	}

	CookMealRequest struct {
		Day  int    `json:"day" validate:"gte=0"`
		Type string `json:"type" validate:"required,oneof=pranzo cena"`
	}

	CookMealResponse struct {
		ConsumedCount int `json:"consumed_count"`
	}

	MealResponse struct {
		ID           string     `json:"id"`
		Day          int        `json:"day"`
		Type         string     `json:"type"`
		Name         string     `json:"name,omitempty"`
		Icon         string     `json:"icon,omitempty"`
		ChefID       string     `json:"chef_id,omitempty"`
		RecipeID     string     `json:"recipe_id,omitempty"`
		Participants []string   `json:"participants"`
		Servings     int        `json:"servings"`
		IsEmpty      bool       `json:"is_empty"`
		IsLeftover   bool       `json:"is_leftover"`
		CookedAt     *time.Time `json:"cooked_at,omitempty"`
	}
)
