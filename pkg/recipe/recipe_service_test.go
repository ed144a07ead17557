package recipe_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/recipe"
	"sorteat-backend/pkg/shopping"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[string]*entities.Recipe)}
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeRecipeRepository) SaveRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(r.recipes, id)
	return nil
}

func (r *fakeRecipeRepository) GetRecipes(_ context.Context, householdID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.HouseholdID.String() == householdID {
			out = append(out, recipe)
		}
	}
	return out, nil
}

type fakeShoppingRepository struct {
	items []*entities.ShoppingItem
}

func (r *fakeShoppingRepository) AddItem(_ context.Context, item *entities.ShoppingItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeShoppingRepository) GetItemByID(_ context.Context, id string) (*entities.ShoppingItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShoppingRepository) SaveItem(_ context.Context, item *entities.ShoppingItem) error {
	return nil
}

func (r *fakeShoppingRepository) DeleteItem(_ context.Context, id string) error {
	return nil
}

func (r *fakeShoppingRepository) GetItems(_ context.Context, _ string) ([]*entities.ShoppingItem, error) {
	return r.items, nil
}

func (r *fakeShoppingRepository) GetCheckedItems(_ context.Context, _ string) ([]*entities.ShoppingItem, error) {
	return nil, nil
}

type fakeInventoryRepository struct {
	products []*entities.Product
}

func newFakeInventoryRepository(products ...*entities.Product) *fakeInventoryRepository {
	return &fakeInventoryRepository{products: products}
}

func (r *fakeInventoryRepository) AddProducts(_ context.Context, products []*entities.Product) error {
	r.products = append(r.products, products...)
	return nil
}

func (r *fakeInventoryRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	for _, p := range r.products {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) SaveProduct(_ context.Context, _ *entities.Product) error {
	return nil
}

func (r *fakeInventoryRepository) DeleteProduct(_ context.Context, _ string) error {
	return nil
}

func (r *fakeInventoryRepository) GetProducts(_ context.Context, _ string, _ string, _, _ int) ([]*entities.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}

func (r *fakeInventoryRepository) ListProducts(_ context.Context, _ string) ([]*entities.Product, error) {
	return r.products, nil
}

func (r *fakeInventoryRepository) CreateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

func (r *fakeInventoryRepository) GetReceiptScanByID(_ context.Context, _ string) (*entities.ReceiptScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) UpdateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

type fakeMemberRepository struct {
	memberCount int64
}

func (r *fakeMemberRepository) CreateHousehold(_ context.Context, _ *entities.Household) error {
	return nil
}

func (r *fakeMemberRepository) GetHouseholdByID(_ context.Context, _ string) (*entities.Household, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemberRepository) GetHouseholdByInviteCode(_ context.Context, _ string) (*entities.Household, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemberRepository) CreateMember(_ context.Context, _ *entities.Member) error {
	return nil
}

func (r *fakeMemberRepository) GetMemberByID(_ context.Context, _ string) (*entities.Member, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemberRepository) GetMemberByEmail(_ context.Context, _ string) (*entities.Member, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemberRepository) GetMembersByHousehold(_ context.Context, _ string) ([]*entities.Member, error) {
	return nil, nil
}

func (r *fakeMemberRepository) CountMembersByHousehold(_ context.Context, _ string) (int64, error) {
	return r.memberCount, nil
}

var (
	_ recipe.RecipeRepository       = (*fakeRecipeRepository)(nil)
	_ shopping.ShoppingRepository   = (*fakeShoppingRepository)(nil)
	_ inventory.InventoryRepository = (*fakeInventoryRepository)(nil)
	_ member.MemberRepository       = (*fakeMemberRepository)(nil)
)

func sharedProduct(householdID uuid.UUID, name string, qty float64, unit string) *entities.Product {
	return &entities.Product{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        name,
		Quantity:    qty,
		Unit:        unit,
		Owners:      entities.EncodeOwners([]string{entities.OwnerShared}),
	}
}

func TestCheckIngredient(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	me := uuid.New().String()
	other := uuid.New().String()

	flour := sharedProduct(household, "Farina 00", 0.3, "kg")
	milk := sharedProduct(household, "Latte", 1, "l")
	butter := sharedProduct(household, "Burro", 250, "g")
	butter.Owners = entities.EncodeOwners([]string{other})
	eggs := sharedProduct(household, "Uova", 6, "pz")

	products := []*entities.Product{flour, milk, butter, eggs}

	tests := []struct {
		name string
		ing  domain.IngredientRef
		want string
	}{
		{
			name: "available across mass units",
			ing:  domain.IngredientRef{Name: "farina", Qty: 300, Unit: "g"},
			want: domain.IngredientStatusAvailable,
		},
		{
			name: "insufficient across volume units",
			ing:  domain.IngredientRef{Name: "latte", Qty: 1500, Unit: "ml"},
			want: domain.IngredientStatusInsufficient,
		},
		{
			name: "missing product",
			ing:  domain.IngredientRef{Name: "zucchero", Qty: 100, Unit: "g"},
			want: domain.IngredientStatusMissing,
		},
		{
			name: "ask needed for someone else's product",
			ing:  domain.IngredientRef{Name: "burro", Qty: 50, Unit: "g"},
			want: domain.IngredientStatusAskNeeded,
		},
		{
			name: "unknown for incompatible units",
			ing:  domain.IngredientRef{Name: "uova", Qty: 100, Unit: "g"},
			want: domain.IngredientStatusUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := recipe.CheckIngredient(products, tt.ing, me, 2)
			if got.Status != tt.want {
				t.Fatalf("expected status %s, got %s", tt.want, got.Status)
			}
		})
	}
}

func TestCheckIngredientSharedByFullOwnerList(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	a := uuid.New().String()
	b := uuid.New().String()

	bread := sharedProduct(household, "Pane", 2, "pz")
	bread.Owners = entities.EncodeOwners([]string{a, b})

	got := recipe.CheckIngredient([]*entities.Product{bread}, domain.IngredientRef{Name: "pane", Qty: 1, Unit: "pz"}, a, 2)
	if got.Status != domain.IngredientStatusAvailable {
		t.Fatalf("expected Available for full-household owners, got %s", got.Status)
	}
}

func TestResolveServings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		servings     int
		participants []string
		want         int
	}{
		{name: "participants raise servings", servings: 2, participants: []string{"a", "b", "c"}, want: 3},
		{name: "participants lower servings", servings: 4, participants: []string{"a"}, want: 1},
		{name: "explicit servings without participants", servings: 4, participants: nil, want: 4},
		{name: "never below one", servings: 0, participants: nil, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := recipe.ResolveServings(tt.servings, tt.participants); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCheckAvailabilityAggregates(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	me := uuid.New().String()

	repo := newFakeRecipeRepository()
	invRepo := newFakeInventoryRepository(
		sharedProduct(household, "Pasta", 0.5, "kg"),
		sharedProduct(household, "Latte", 200, "ml"),
	)
	svc := recipe.NewRecipeService(repo, invRepo, &fakeShoppingRepository{}, &fakeMemberRepository{memberCount: 2})

	saved := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: household,
		Name:        "Pasta al latte",
		Servings:    2,
		Ingredients: recipe.EncodeIngredients([]domain.IngredientRef{
			{Name: "pasta", Qty: 400, Unit: "g"},
			{Name: "latte", Qty: 0.5, Unit: "l"},
			{Name: "parmigiano", Qty: 50, Unit: "g"},
		}),
	}
	repo.recipes[saved.ID.String()] = saved

	res, err := svc.CheckAvailability(context.Background(), saved.ID.String(), household.String(), me)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CanCook {
		t.Fatalf("expected CanCook false")
	}
	if len(res.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredient statuses, got %d", len(res.Ingredients))
	}
	if res.Ingredients[0].Status != domain.IngredientStatusAvailable {
		t.Fatalf("expected pasta Available, got %s", res.Ingredients[0].Status)
	}
	if res.Ingredients[1].Status != domain.IngredientStatusInsufficient {
		t.Fatalf("expected latte Insufficient, got %s", res.Ingredients[1].Status)
	}
	if res.Ingredients[2].Status != domain.IngredientStatusMissing {
		t.Fatalf("expected parmigiano Missing, got %s", res.Ingredients[2].Status)
	}

	// Missing carries the full parmigiano need and the milk shortfall.
	if len(res.Missing) != 2 {
		t.Fatalf("expected 2 missing entries, got %d", len(res.Missing))
	}
	if res.Missing[0].Name != "latte" || res.Missing[0].Qty != 0.3 {
		t.Fatalf("expected 0.3 l milk shortfall, got %v %s", res.Missing[0].Qty, res.Missing[0].Name)
	}
}

func TestAddMissingToList(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	me := uuid.New().String()

	repo := newFakeRecipeRepository()
	invRepo := newFakeInventoryRepository()
	shopRepo := &fakeShoppingRepository{}
	svc := recipe.NewRecipeService(repo, invRepo, shopRepo, &fakeMemberRepository{memberCount: 2})

	saved := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: household,
		Name:        "Torta",
		Servings:    4,
		Ingredients: recipe.EncodeIngredients([]domain.IngredientRef{
			{Name: "farina", Qty: 300, Unit: "g"},
			{Name: "zucchero", Qty: 150, Unit: "g"},
		}),
	}
	repo.recipes[saved.ID.String()] = saved

	added, err := svc.AddMissingToList(context.Background(), saved.ID.String(), domain.AddMissingToListRequest{}, household.String(), me)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 items added, got %d", added)
	}
	if len(shopRepo.items) != 2 {
		t.Fatalf("expected 2 shopping items, got %d", len(shopRepo.items))
	}
	if shopRepo.items[0].Department != domain.DepartmentDispensa {
		t.Fatalf("expected default department dispensa, got %s", shopRepo.items[0].Department)
	}
	owners := entities.ParseOwners(shopRepo.items[0].Owners)
	if len(owners) != 1 || owners[0] != entities.OwnerShared {
		t.Fatalf("expected shared owner, got %v", owners)
	}
}

func TestCreateRecipeSyncsServings(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	repo := newFakeRecipeRepository()
	svc := recipe.NewRecipeService(repo, newFakeInventoryRepository(), &fakeShoppingRepository{}, &fakeMemberRepository{memberCount: 3})

	res, err := svc.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Name:         "Risotto",
		Servings:     2,
		Participants: []string{"a", "b", "c"},
		Ingredients:  []domain.IngredientRef{{Name: "riso", Qty: 320, Unit: "g"}},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Servings != 3 {
		t.Fatalf("expected servings raised to 3, got %d", res.Servings)
	}
}
