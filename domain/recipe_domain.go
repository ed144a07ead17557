package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes       = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail  = "recipe detail retrieved successfully"
	MessageSuccessSaveRecipe       = "recipe saved successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetAvailability  = "ingredient availability retrieved successfully"
	MessageSuccessAddMissingToList = "missing ingredients added to shopping list"

	MessageFailedGetRecipes       = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail  = "failed to retrieve recipe detail"
	MessageFailedSaveRecipe       = "failed to save recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedGetAvailability  = "failed to retrieve ingredient availability"
	MessageFailedAddMissingToList = "failed to add missing ingredients to shopping list"

	ErrRecipeNotFound = errors.New("recipe not found")
)

// Per-ingredient availability against the household inventory. Unknown is
// the explicit outcome of an incompatible-unit comparison: the ingredient
// is treated as present, but the comparison was skipped, not passed.
const (
	IngredientStatusAvailable    = "Available"
	IngredientStatusAskNeeded    = "AskNeeded"
	IngredientStatusInsufficient = "Insufficient"
	IngredientStatusMissing      = "Missing"
	IngredientStatusUnknown      = "Unknown"
)

type (
	SaveRecipeRequest struct {
		Name            string          `json:"name" validate:"required"`
		Icon            string          `json:"icon" validate:"omitempty"`
		PrepTimeMinutes int             `json:"prep_time_minutes" validate:"omitempty,gte=0"`
		Servings        int             `json:"servings" validate:"omitempty,gte=1"`
		Ingredients     []IngredientRef `json:"ingredients" validate:"required,min=1,dive"`
		Steps           []string        `json:"steps" validate:"omitempty"`
		Participants    []string        `json:"participants" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID              string          `json:"id"`
		Name            string          `json:"name"`
		Icon            string          `json:"icon,omitempty"`
		Servings        int             `json:"servings"`
		PrepTimeMinutes int             `json:"prep_time_minutes"`
		Ingredients     []IngredientRef `json:"ingredients"`
		Steps           []string        `json:"steps"`
		Participants    []string        `json:"participants"`
	}

	IngredientAvailability struct {
		Name      string   `json:"name"`
		Qty       float64  `json:"qty"`
		Unit      string   `json:"unit"`
		Status    string   `json:"status"`
		ProductID string   `json:"product_id,omitempty"`
		Owners    []string `json:"owners,omitempty"`
	}

	RecipeAvailabilityResponse struct {
		RecipeID    string                   `json:"recipe_id"`
		Ingredients []IngredientAvailability `json:"ingredients"`
		Missing     []IngredientRef          `json:"missing"`
		CanCook     bool                     `json:"can_cook"`
	}

	AddMissingToListRequest struct {
		Department string `json:"department" validate:"omitempty,oneof=ortofrutta freschi dispensa casa"`
	}
)
