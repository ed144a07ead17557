package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/waste"
)

type fakeInventoryRepository struct {
	products []*entities.Product
	scans    map[string]*entities.ReceiptScan
}

func newFakeInventoryRepository(products ...*entities.Product) *fakeInventoryRepository {
	return &fakeInventoryRepository{
		products: products,
		scans:    make(map[string]*entities.ReceiptScan),
	}
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

func (r *fakeInventoryRepository) SaveProduct(_ context.Context, product *entities.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) DeleteProduct(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID.String() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeInventoryRepository) GetProducts(_ context.Context, householdID string, category string, page, limit int) ([]*entities.Product, int64, error) {
	var out []*entities.Product
	for _, p := range r.products {
		if p.HouseholdID.String() != householdID {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInventoryRepository) ListProducts(_ context.Context, householdID string) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range r.products {
		if p.HouseholdID.String() == householdID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepository) CreateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	r.scans[scan.ID.String()] = scan
	return nil
}

func (r *fakeInventoryRepository) GetReceiptScanByID(_ context.Context, id string) (*entities.ReceiptScan, error) {
	scan, ok := r.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return scan, nil
}

func (r *fakeInventoryRepository) UpdateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	r.scans[scan.ID.String()] = scan
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

type fakeWasteService struct {
	registered []domain.RegisterWasteRequest
}

func (s *fakeWasteService) GetStats(_ context.Context, _ string) (domain.WasteStatsResponse, error) {
	return domain.WasteStatsResponse{}, nil
}

func (s *fakeWasteService) RegisterWaste(_ context.Context, req domain.RegisterWasteRequest, _, _ string) (domain.WasteStatsResponse, error) {
	s.registered = append(s.registered, req)
	return domain.WasteStatsResponse{}, nil
}

func (s *fakeWasteService) Tick(_ context.Context, _ string) (domain.WasteStatsResponse, error) {
	return domain.WasteStatsResponse{}, nil
}

func (s *fakeWasteService) GetEvents(_ context.Context, _ string, _, _ int) ([]domain.WasteEventResponse, int64, error) {
	return nil, 0, nil
}

var (
	_ inventory.InventoryRepository = (*fakeInventoryRepository)(nil)
	_ member.MemberRepository       = (*fakeMemberRepository)(nil)
	_ waste.WasteService            = (*fakeWasteService)(nil)
)

func newTestService(repo *fakeInventoryRepository) inventory.InventoryService {
	return inventory.NewInventoryService(repo, &fakeMemberRepository{memberCount: 2}, &fakeWasteService{}, nil)
}

func testProduct(householdID uuid.UUID, name string, qty float64, unit string) *entities.Product {
	return &entities.Product{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        name,
		Category:    domain.CategoryDispensa,
		Quantity:    qty,
		Unit:        unit,
		Owners:      entities.EncodeOwners([]string{entities.OwnerShared}),
	}
}

func TestConsumeIngredientsConvertsUnits(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	pasta := testProduct(household, "Pasta", 1, "kg")
	repo := newFakeInventoryRepository(pasta)
	svc := newTestService(repo)

	consumed, err := svc.ConsumeIngredients(context.Background(), []domain.IngredientRef{
		{Name: "pasta", Qty: 300, Unit: "g"},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 1 {
		t.Fatalf("expected 1 consumed, got %d", consumed)
	}
	if pasta.Quantity != 0.7 {
		t.Fatalf("expected 0.7 kg remaining, got %v", pasta.Quantity)
	}
}

func TestConsumeIngredientsDeletesExhaustedProduct(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	milk := testProduct(household, "Latte", 500, "ml")
	repo := newFakeInventoryRepository(milk)
	svc := newTestService(repo)

	consumed, err := svc.ConsumeIngredients(context.Background(), []domain.IngredientRef{
		{Name: "latte", Qty: 0.5, Unit: "l"},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 1 {
		t.Fatalf("expected 1 consumed, got %d", consumed)
	}
	if len(repo.products) != 0 {
		t.Fatalf("expected product deleted, got %d products", len(repo.products))
	}
}

func TestConsumeIngredientsSkipsUnmatched(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	repo := newFakeInventoryRepository(testProduct(household, "Riso", 1, "kg"))
	svc := newTestService(repo)

	consumed, err := svc.ConsumeIngredients(context.Background(), []domain.IngredientRef{
		{Name: "Farina", Qty: 200, Unit: "g"},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 0 {
		t.Fatalf("expected 0 consumed, got %d", consumed)
	}
}

func TestConsumeIngredientsPrefersProductID(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	first := testProduct(household, "Sale fino", 1, "kg")
	second := testProduct(household, "Sale grosso", 1, "kg")
	repo := newFakeInventoryRepository(first, second)
	svc := newTestService(repo)

	// The name alone would match the first product; the id must win.
	_, err := svc.ConsumeIngredients(context.Background(), []domain.IngredientRef{
		{Name: "sale", Qty: 100, Unit: "g", ProductID: second.ID.String()},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Quantity != 1 {
		t.Fatalf("expected first product untouched, got %v", first.Quantity)
	}
	if second.Quantity != 0.9 {
		t.Fatalf("expected 0.9 kg on second product, got %v", second.Quantity)
	}
}

func TestConsumeIngredientsIncompatibleUnitsDeductRaw(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	eggs := testProduct(household, "Uova", 6, "pz")
	repo := newFakeInventoryRepository(eggs)
	svc := newTestService(repo)

	consumed, err := svc.ConsumeIngredients(context.Background(), []domain.IngredientRef{
		{Name: "uova", Qty: 2, Unit: "g"},
	}, household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 1 {
		t.Fatalf("expected 1 consumed, got %d", consumed)
	}
	if eggs.Quantity != 4 {
		t.Fatalf("expected 4 pz remaining, got %v", eggs.Quantity)
	}
}

func TestGetExpiringProductsFiltersAndSorts(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	now := time.Now()
	in1 := now.AddDate(0, 0, 1)
	in3 := now.AddDate(0, 0, 3)
	in10 := now.AddDate(0, 0, 10)

	soon := testProduct(household, "Yogurt", 2, "pz")
	soon.ExpiryDate = &in1
	later := testProduct(household, "Mozzarella", 1, "pz")
	later.ExpiryDate = &in3
	far := testProduct(household, "Tonno", 3, "pz")
	far.ExpiryDate = &in10
	never := testProduct(household, "Sale", 1, "kg")

	repo := newFakeInventoryRepository(later, far, never, soon)
	svc := newTestService(repo)

	expiring, err := svc.GetExpiringProducts(context.Background(), household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expiring) != 2 {
		t.Fatalf("expected 2 expiring products, got %d", len(expiring))
	}
	if expiring[0].Name != "Yogurt" || expiring[1].Name != "Mozzarella" {
		t.Fatalf("expected ascending expiry order, got %s then %s", expiring[0].Name, expiring[1].Name)
	}
	if expiring[0].DaysUntilExpiry != 1 {
		t.Fatalf("expected 1 day until expiry, got %d", expiring[0].DaysUntilExpiry)
	}
	if expiring[0].ExpiryLabel != "Scade domani" {
		t.Fatalf("unexpected expiry label %q", expiring[0].ExpiryLabel)
	}
}

func TestDeleteProductRegistersWaste(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	price := 2.5
	yogurt := testProduct(household, "Yogurt", 2, "pz")
	yogurt.Price = &price
	repo := newFakeInventoryRepository(yogurt)

	wasteSvc := &fakeWasteService{}
	svc := inventory.NewInventoryService(repo, &fakeMemberRepository{memberCount: 2}, wasteSvc, nil)

	memberID := uuid.New().String()
	if err := svc.DeleteProduct(context.Background(), yogurt.ID.String(), "expired", household.String(), memberID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wasteSvc.registered) != 1 {
		t.Fatalf("expected 1 waste event, got %d", len(wasteSvc.registered))
	}
	if wasteSvc.registered[0].Reason != "expired" {
		t.Fatalf("expected reason expired, got %q", wasteSvc.registered[0].Reason)
	}
	if *wasteSvc.registered[0].Value != 2.5 {
		t.Fatalf("expected value 2.5, got %v", *wasteSvc.registered[0].Value)
	}
}

func TestDeleteProductConsumedSkipsWaste(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	pane := testProduct(household, "Pane", 1, "pz")
	repo := newFakeInventoryRepository(pane)

	wasteSvc := &fakeWasteService{}
	svc := inventory.NewInventoryService(repo, &fakeMemberRepository{memberCount: 2}, wasteSvc, nil)

	if err := svc.DeleteProduct(context.Background(), pane.ID.String(), "consumed", household.String(), uuid.New().String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wasteSvc.registered) != 0 {
		t.Fatalf("expected no waste events, got %d", len(wasteSvc.registered))
	}
}

func TestDeleteProductMissingIsNoOp(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	repo := newFakeInventoryRepository()
	svc := newTestService(repo)

	if err := svc.DeleteProduct(context.Background(), uuid.New().String(), "expired", household.String(), uuid.New().String()); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{name: "tomorrow just after midnight", expiry: time.Date(2026, 3, 11, 0, 10, 0, 0, time.UTC), want: 1},
		{name: "same day", expiry: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), want: 0},
		{name: "already expired", expiry: time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC), want: -2},
		{name: "three days out", expiry: time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC), want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := inventory.DaysUntilExpiry(tt.expiry, now); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDaysUntilExpiryAcrossZones(t *testing.T) {
	t.Parallel()

	// Expiry dates parse as UTC midnights; a server west of UTC must
	// still count whole calendar days.
	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, west)

	if got := inventory.DaysUntilExpiry(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), now); got != 3 {
		t.Fatalf("expected 3 calendar days, got %d", got)
	}
	if got := inventory.DaysUntilExpiry(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), now); got != 1 {
		t.Fatalf("expected 1 calendar day, got %d", got)
	}
}

func TestGetExpiringProductsStableForEqualDates(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	in2 := time.Now().AddDate(0, 0, 2)

	first := testProduct(household, "Ricotta", 1, "pz")
	first.ExpiryDate = &in2
	second := testProduct(household, "Stracchino", 1, "pz")
	second.ExpiryDate = &in2

	repo := newFakeInventoryRepository(first, second)
	svc := newTestService(repo)

	expiring, err := svc.GetExpiringProducts(context.Background(), household.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expiring) != 2 {
		t.Fatalf("expected 2 expiring products, got %d", len(expiring))
	}
	if expiring[0].Name != "Ricotta" || expiring[1].Name != "Stracchino" {
		t.Fatalf("expected creation order kept for equal dates, got %s then %s", expiring[0].Name, expiring[1].Name)
	}
}

func TestMatchProductSubstring(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	first := testProduct(household, "Passata di pomodoro", 700, "g")
	second := testProduct(household, "Pomodori freschi", 500, "g")
	products := []*entities.Product{first, second}

	got := inventory.MatchProduct(products, domain.IngredientRef{Name: "Pomodoro", Qty: 100, Unit: "g"})
	if got == nil || got.ID != first.ID {
		t.Fatalf("expected first matching product in creation order")
	}

	if inventory.MatchProduct(products, domain.IngredientRef{Name: "  ", Qty: 1, Unit: "g"}) != nil {
		t.Fatalf("expected no match for blank name")
	}
}
