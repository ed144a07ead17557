package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/internal/units"
	"sorteat-backend/internal/utils/storage"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/waste"
)

// Products with at most this many days until expiry show up in the
// expiring view.
const expiryWarningDays = 3

type (
	InventoryService interface {
		AddProducts(ctx context.Context, req domain.AddProductsRequest, householdID, memberID string) ([]domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, householdID, memberID string) error
		DeleteProduct(ctx context.Context, id string, reason string, householdID, memberID string) error
		GetProducts(ctx context.Context, householdID string, category string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetExpiringProducts(ctx context.Context, householdID string) ([]domain.ExpiringProductResponse, error)
		ConsumeIngredients(ctx context.Context, ingredients []domain.IngredientRef, householdID string) (int, error)

		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, householdID, memberID string) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, id string, memberID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, householdID, memberID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		memberRepository    member.MemberRepository
		wasteService        waste.WasteService
		s3                  storage.AwsS3
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, memberRepository member.MemberRepository, wasteService waste.WasteService, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		memberRepository:    memberRepository,
		wasteService:        wasteService,
		s3:                  s3,
	}
}

func (s *inventoryService) AddProducts(ctx context.Context, req domain.AddProductsRequest, householdID, memberID string) ([]domain.ProductResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	products := make([]*entities.Product, 0, len(req.Products))
	for _, entry := range req.Products {
		category := entry.Category
		if category == "" {
			category = domain.CategoryDispensa
		}

		owners := entry.Owners
		if len(owners) == 0 {
			owners = []string{memberID}
		}

		var expiry *time.Time
		if entry.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", entry.ExpiryDate)
			if err != nil {
				return nil, domain.ErrInvalidExpiryDate
			}
			expiry = &parsed
		}

		products = append(products, &entities.Product{
			ID:          uuid.New(),
			HouseholdID: householdUUID,
			Name:        entry.Name,
			Icon:        entry.Icon,
			Category:    category,
			Quantity:    entry.Quantity,
			Unit:        entry.Unit,
			Owners:      entities.EncodeOwners(owners),
			ExpiryDate:  expiry,
			Price:       entry.Price,
			Source:      "Manual",
		})
	}

	if err := s.inventoryRepository.AddProducts(ctx, products); err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p, 0))
	}
	return response, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, householdID, memberID string) error {
	product, err := s.inventoryRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing ids are a silent no-op.
			return nil
		}
		return err
	}

	if product.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	if len(req.Owners) > 0 {
		if !entities.OwnersContain(req.Owners, memberID) && !entities.OwnersContain(req.Owners, entities.OwnerShared) {
			return domain.ErrOwnerSelfRemoval
		}
		product.Owners = entities.EncodeOwners(req.Owners)
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Icon != "" {
		product.Icon = req.Icon
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		product.ExpiryDate = &parsed
	}
	if req.Price != nil {
		product.Price = req.Price
	}

	return s.inventoryRepository.SaveProduct(ctx, product)
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id string, reason string, householdID, memberID string) error {
	product, err := s.inventoryRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if product.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	if err := s.inventoryRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	// Throwing away an expired or discarded product counts as waste.
	if reason == "expired" || reason == "discarded" {
		value := 0.0
		if product.Price != nil {
			value = *product.Price
		}
		_, err := s.wasteService.RegisterWaste(ctx, domain.RegisterWasteRequest{
			ProductName: product.Name,
			Quantity:    product.Quantity,
			Unit:        product.Unit,
			Reason:      reason,
			Value:       &value,
		}, householdID, memberID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *inventoryService) GetProducts(ctx context.Context, householdID string, category string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.inventoryRepository.GetProducts(ctx, householdID, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	householdSize := s.householdSize(ctx, householdID)
	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p, householdSize))
	}

	return response, count, nil
}

func (s *inventoryService) GetExpiringProducts(ctx context.Context, householdID string) ([]domain.ExpiringProductResponse, error) {
	products, err := s.inventoryRepository.ListProducts(ctx, householdID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiring := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if p.ExpiryDate == nil {
			continue
		}
		if DaysUntilExpiry(*p.ExpiryDate, now) <= expiryWarningDays {
			expiring = append(expiring, p)
		}
	}

	// Ascending by expiry date; ties keep creation order.
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiryDate.Before(*expiring[j].ExpiryDate)
	})

	householdSize := s.householdSize(ctx, householdID)
	response := make([]domain.ExpiringProductResponse, 0, len(expiring))
	for _, p := range expiring {
		days := DaysUntilExpiry(*p.ExpiryDate, now)
		response = append(response, domain.ExpiringProductResponse{
			ProductResponse: toProductResponse(p, householdSize),
			DaysUntilExpiry: days,
			ExpiryLabel:     expiryLabel(days),
		})
	}

	return response, nil
}

// ConsumeIngredients deducts each ingredient from the first matching
// product: an exact product id reference wins, a case-insensitive
// substring match on the name is the fallback. Ingredients with no match
// are skipped. Returns how many ingredients were actually consumed.
func (s *inventoryService) ConsumeIngredients(ctx context.Context, ingredients []domain.IngredientRef, householdID string) (int, error) {
	products, err := s.inventoryRepository.ListProducts(ctx, householdID)
	if err != nil {
		return 0, err
	}

	consumed := 0
	for _, ing := range ingredients {
		product := MatchProduct(products, ing)
		if product == nil {
			continue
		}

		var remaining float64
		if units.Compatible(product.Unit, ing.Unit) {
			remainingBase := units.ToBase(product.Quantity, product.Unit) - units.ToBase(ing.Qty, ing.Unit)
			remaining = units.FromBase(remainingBase, product.Unit)
		} else {
			// Incompatible units: the comparison is skipped, the raw
			// quantity is deducted in the product's own unit.
			remaining = product.Quantity - ing.Qty
		}

		if remaining <= 0 {
			if err := s.inventoryRepository.DeleteProduct(ctx, product.ID.String()); err != nil {
				return consumed, err
			}
			product.Quantity = 0
		} else {
			product.Quantity = units.Round2(remaining)
			if err := s.inventoryRepository.SaveProduct(ctx, product); err != nil {
				return consumed, err
			}
		}
		consumed++
	}

	return consumed, nil
}

// MatchProduct resolves an ingredient against the product list: exact id
// join first, then the first product whose name contains the ingredient
// name as a case-insensitive substring.
func MatchProduct(products []*entities.Product, ing domain.IngredientRef) *entities.Product {
	if ing.ProductID != "" {
		for _, p := range products {
			if p.ID.String() == ing.ProductID {
				return p
			}
		}
	}

	needle := strings.ToLower(strings.TrimSpace(ing.Name))
	if needle == "" {
		return nil
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p
		}
	}
	return nil
}

// DaysUntilExpiry counts calendar days between today's and the expiry
// date's midnights. Zero or negative means already expired. Both
// midnights are taken in the expiry date's location so a server running
// in another zone still counts whole calendar days.
func DaysUntilExpiry(expiry time.Time, now time.Time) int {
	now = now.In(expiry.Location())
	expMid := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, expiry.Location())
	nowMid := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, expiry.Location())
	return int(math.Ceil(expMid.Sub(nowMid).Hours() / 24))
}

func expiryLabel(days int) string {
	switch {
	case days <= 0:
		return "Scaduto"
	case days == 1:
		return "Scade domani"
	default:
		return fmt.Sprintf("Scade tra %d giorni", days)
	}
}

func toProductResponse(p *entities.Product, householdSize int) domain.ProductResponse {
	owners := entities.ParseOwners(p.Owners)
	return domain.ProductResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Icon:       p.Icon,
		Category:   p.Category,
		Quantity:   p.Quantity,
		Unit:       p.Unit,
		Owners:     owners,
		IsShared:   entities.IsShared(owners, householdSize),
		ExpiryDate: p.ExpiryDate,
		Price:      p.Price,
		Source:     p.Source,
		CreatedAt:  p.CreatedAt,
	}
}

func (s *inventoryService) householdSize(ctx context.Context, householdID string) int {
	count, err := s.memberRepository.CountMembersByHousehold(ctx, householdID)
	if err != nil {
		return 0
	}
	return int(count)
}
