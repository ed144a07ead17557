package meal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/recipe"
)

type (
	MealService interface {
		GetMeals(ctx context.Context, householdID string) ([]domain.MealResponse, error)
		UpdateSlot(ctx context.Context, req domain.UpdateMealSlotRequest, householdID string) (domain.MealResponse, error)
		Cook(ctx context.Context, req domain.CookMealRequest, householdID string) (domain.CookMealResponse, error)
	}

	mealService struct {
		mealRepository   MealRepository
		recipeRepository recipe.RecipeRepository
		inventoryService inventory.InventoryService
	}
)

func NewMealService(mealRepository MealRepository, recipeRepository recipe.RecipeRepository, inventoryService inventory.InventoryService) MealService {
	return &mealService{
		mealRepository:   mealRepository,
		recipeRepository: recipeRepository,
		inventoryService: inventoryService,
	}
}

func (s *mealService) GetMeals(ctx context.Context, householdID string) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetMeals(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, toMealResponse(m))
	}
	return response, nil
}

// UpdateSlot fills or edits the (day, type) slot. The slot is created on
// first write and merged on later ones, so partial edits from the planner
// never wipe fields they did not touch.
func (s *mealService) UpdateSlot(ctx context.Context, req domain.UpdateMealSlotRequest, householdID string) (domain.MealResponse, error) {
	if req.Type != domain.MealTypePranzo && req.Type != domain.MealTypeCena {
		return domain.MealResponse{}, domain.ErrMealTypeInvalid
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	meal, err := s.mealRepository.GetMealBySlot(ctx, householdID, req.Day, req.Type)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, err
		}
		meal = &entities.Meal{
			ID:          uuid.New(),
			HouseholdID: householdUUID,
			Day:         req.Day,
			Type:        req.Type,
			IsEmpty:     true,
		}
		if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
			return domain.MealResponse{}, err
		}
	}

	if req.Name != "" {
		meal.Name = req.Name
	}
	if req.Icon != "" {
		meal.Icon = req.Icon
	}
	if req.ChefID != "" {
		chefUUID, err := uuid.Parse(req.ChefID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		meal.ChefID = &chefUUID
	}
	if req.RecipeID != "" {
		recipeUUID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		meal.RecipeID = &recipeUUID
	}
	if len(req.Participants) > 0 {
		raw, _ := json.Marshal(req.Participants)
		meal.Participants = string(raw)
	}
	if len(req.Ingredients) > 0 {
		meal.Ingredients = recipe.EncodeIngredients(req.Ingredients)
	}
	if req.Servings > 0 {
		meal.Servings = req.Servings
	}
	meal.Servings = recipe.ResolveServings(meal.Servings, req.Participants)
	meal.IsLeftover = req.IsLeftover
	meal.IsEmpty = false

	if err := s.mealRepository.SaveMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}
	return toMealResponse(meal), nil
}

// Cook consumes the slot's ingredients from the inventory and stamps the
// slot as cooked. Leftover meals consume nothing; they were cooked once
// already.
func (s *mealService) Cook(ctx context.Context, req domain.CookMealRequest, householdID string) (domain.CookMealResponse, error) {
	if req.Type != domain.MealTypePranzo && req.Type != domain.MealTypeCena {
		return domain.CookMealResponse{}, domain.ErrMealTypeInvalid
	}

	meal, err := s.mealRepository.GetMealBySlot(ctx, householdID, req.Day, req.Type)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookMealResponse{}, domain.ErrMealNotFound
		}
		return domain.CookMealResponse{}, err
	}

	if meal.IsEmpty {
		return domain.CookMealResponse{}, domain.ErrMealSlotEmpty
	}

	if meal.IsLeftover {
		now := time.Now()
		meal.CookedAt = &now
		if err := s.mealRepository.SaveMeal(ctx, meal); err != nil {
			return domain.CookMealResponse{}, err
		}
		return domain.CookMealResponse{ConsumedCount: 0}, nil
	}

	ingredients := s.slotIngredients(ctx, meal)
	if len(ingredients) == 0 {
		return domain.CookMealResponse{}, domain.ErrMealNoIngredients
	}

	consumed, err := s.inventoryService.ConsumeIngredients(ctx, ingredients, householdID)
	if err != nil {
		return domain.CookMealResponse{}, err
	}

	now := time.Now()
	meal.CookedAt = &now
	if err := s.mealRepository.SaveMeal(ctx, meal); err != nil {
		return domain.CookMealResponse{}, err
	}

	return domain.CookMealResponse{ConsumedCount: consumed}, nil
}

// slotIngredients prefers the slot's own ingredient list and falls back to
// the linked recipe.
func (s *mealService) slotIngredients(ctx context.Context, meal *entities.Meal) []domain.IngredientRef {
	if ingredients := recipe.DecodeIngredients(meal.Ingredients); len(ingredients) > 0 {
		return ingredients
	}

	if meal.RecipeID == nil {
		return nil
	}
	linked, err := s.recipeRepository.GetRecipeByID(ctx, meal.RecipeID.String())
	if err != nil {
		return nil
	}
	return recipe.DecodeIngredients(linked.Ingredients)
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	var participants []string
	if err := json.Unmarshal([]byte(m.Participants), &participants); err != nil || participants == nil {
		participants = []string{}
	}

	response := domain.MealResponse{
		ID:           m.ID.String(),
		Day:          m.Day,
		Type:         m.Type,
		Name:         m.Name,
		Icon:         m.Icon,
		Participants: participants,
		Servings:     m.Servings,
		IsEmpty:      m.IsEmpty,
		IsLeftover:   m.IsLeftover,
		CookedAt:     m.CookedAt,
	}
	if m.ChefID != nil {
		response.ChefID = m.ChefID.String()
	}
	if m.RecipeID != nil {
		response.RecipeID = m.RecipeID.String()
	}
	return response
}
