package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/internal/units"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/shopping"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, householdID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, householdID string) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, householdID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, householdID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, householdID string) error
		CheckAvailability(ctx context.Context, id string, householdID, memberID string) (domain.RecipeAvailabilityResponse, error)
		AddMissingToList(ctx context.Context, id string, req domain.AddMissingToListRequest, householdID, memberID string) (int, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
		shoppingRepository  shopping.ShoppingRepository
		memberRepository    member.MemberRepository
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	inventoryRepository inventory.InventoryRepository,
	shoppingRepository shopping.ShoppingRepository,
	memberRepository member.MemberRepository,
) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		shoppingRepository:  shoppingRepository,
		memberRepository:    memberRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, householdID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, toRecipeResponse(r))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, householdID string) (domain.RecipeResponse, error) {
	recipe, err := s.getHouseholdRecipe(ctx, id, householdID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, householdID string) (domain.RecipeResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
	}
	applyRecipeRequest(recipe, req)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, householdID string) (domain.RecipeResponse, error) {
	recipe, err := s.getHouseholdRecipe(ctx, id, householdID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	applyRecipeRequest(recipe, req)

	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, householdID string) error {
	_, err := s.getHouseholdRecipe(ctx, id, householdID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// CheckAvailability compares every ingredient against the current
// inventory. CanCook tolerates AskNeeded and Unknown ingredients; only a
// truly missing or short product blocks cooking.
func (s *recipeService) CheckAvailability(ctx context.Context, id string, householdID, memberID string) (domain.RecipeAvailabilityResponse, error) {
	recipe, err := s.getHouseholdRecipe(ctx, id, householdID)
	if err != nil {
		return domain.RecipeAvailabilityResponse{}, err
	}

	products, err := s.inventoryRepository.ListProducts(ctx, householdID)
	if err != nil {
		return domain.RecipeAvailabilityResponse{}, err
	}

	householdSize := 0
	if count, err := s.memberRepository.CountMembersByHousehold(ctx, householdID); err == nil {
		householdSize = int(count)
	}

	ingredients := DecodeIngredients(recipe.Ingredients)
	response := domain.RecipeAvailabilityResponse{
		RecipeID:    recipe.ID.String(),
		Ingredients: make([]domain.IngredientAvailability, 0, len(ingredients)),
		Missing:     []domain.IngredientRef{},
		CanCook:     true,
	}

	for _, ing := range ingredients {
		availability := CheckIngredient(products, ing, memberID, householdSize)
		response.Ingredients = append(response.Ingredients, availability)

		switch availability.Status {
		case domain.IngredientStatusMissing:
			response.Missing = append(response.Missing, ing)
			response.CanCook = false
		case domain.IngredientStatusInsufficient:
			response.Missing = append(response.Missing, shortfall(products, ing))
			response.CanCook = false
		}
	}

	return response, nil
}

func (s *recipeService) AddMissingToList(ctx context.Context, id string, req domain.AddMissingToListRequest, householdID, memberID string) (int, error) {
	availability, err := s.CheckAvailability(ctx, id, householdID, memberID)
	if err != nil {
		return 0, err
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return 0, domain.ErrParseUUID
	}

	department := req.Department
	if department == "" {
		department = domain.DepartmentDispensa
	}

	added := 0
	for _, ing := range availability.Missing {
		item := &entities.ShoppingItem{
			ID:          uuid.New(),
			HouseholdID: householdUUID,
			Name:        ing.Name,
			Quantity:    ing.Qty,
			Unit:        ing.Unit,
			Department:  department,
			Owners:      entities.EncodeOwners([]string{entities.OwnerShared}),
		}
		if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// CheckIngredient classifies one ingredient against the product list.
func CheckIngredient(products []*entities.Product, ing domain.IngredientRef, memberID string, householdSize int) domain.IngredientAvailability {
	availability := domain.IngredientAvailability{
		Name: ing.Name,
		Qty:  ing.Qty,
		Unit: ing.Unit,
	}

	product := inventory.MatchProduct(products, ing)
	if product == nil {
		availability.Status = domain.IngredientStatusMissing
		return availability
	}

	owners := entities.ParseOwners(product.Owners)
	availability.ProductID = product.ID.String()
	availability.Owners = owners

	if !units.Compatible(product.Unit, ing.Unit) {
		availability.Status = domain.IngredientStatusUnknown
		return availability
	}

	if !units.Covers(product.Quantity, product.Unit, ing.Qty, ing.Unit) {
		availability.Status = domain.IngredientStatusInsufficient
		return availability
	}

	// Enough is in stock, but someone else's personal product needs a
	// word before the pan comes out.
	if !entities.IsShared(owners, householdSize) && !entities.OwnersContain(owners, memberID) && len(owners) > 0 {
		availability.Status = domain.IngredientStatusAskNeeded
		return availability
	}

	availability.Status = domain.IngredientStatusAvailable
	return availability
}

// shortfall reduces an insufficient ingredient to the quantity still
// needed, in the ingredient's own unit.
func shortfall(products []*entities.Product, ing domain.IngredientRef) domain.IngredientRef {
	product := inventory.MatchProduct(products, ing)
	if product == nil || !units.Compatible(product.Unit, ing.Unit) {
		return ing
	}

	missingBase := units.ToBase(ing.Qty, ing.Unit) - units.ToBase(product.Quantity, product.Unit)
	if missingBase <= 0 {
		return ing
	}

	short := ing
	short.Qty = units.Round2(units.FromBase(missingBase, ing.Unit))
	return short
}

func (s *recipeService) getHouseholdRecipe(ctx context.Context, id string, householdID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.HouseholdID.String() != householdID {
		return nil, domain.ErrMemberNotAllowed
	}
	return recipe, nil
}

func applyRecipeRequest(recipe *entities.Recipe, req domain.SaveRecipeRequest) {
	recipe.Name = req.Name
	recipe.Icon = req.Icon
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.Servings = ResolveServings(req.Servings, req.Participants)
	recipe.Ingredients = EncodeIngredients(req.Ingredients)
	recipe.Steps = encodeStrings(req.Steps)
	recipe.Participants = encodeStrings(req.Participants)
}

// ResolveServings keeps servings in step with the participant list.
// A non-empty list overrides whatever was typed in, in both directions,
// and the result never drops below one.
func ResolveServings(servings int, participants []string) int {
	if len(participants) > 0 {
		servings = len(participants)
	}
	if servings < 1 {
		servings = 1
	}
	return servings
}

func EncodeIngredients(ingredients []domain.IngredientRef) string {
	if len(ingredients) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func DecodeIngredients(raw string) []domain.IngredientRef {
	var ingredients []domain.IngredientRef
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil
	}
	return ingredients
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeStrings(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	ingredients := DecodeIngredients(r.Ingredients)
	if ingredients == nil {
		ingredients = []domain.IngredientRef{}
	}
	steps := decodeStrings(r.Steps)
	if steps == nil {
		steps = []string{}
	}
	participants := decodeStrings(r.Participants)
	if participants == nil {
		participants = []string{}
	}

	return domain.RecipeResponse{
		ID:              r.ID.String(),
		Name:            r.Name,
		Icon:            r.Icon,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		Ingredients:     ingredients,
		Steps:           steps,
		Participants:    participants,
	}
}
