package shopping

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/midtrans"
)

type (
	ShoppingService interface {
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest, householdID, memberID string) (domain.ShoppingItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, householdID, memberID string) error
		DeleteItem(ctx context.Context, id string, householdID string) error
		ToggleItem(ctx context.Context, id string, householdID string) error
		GetItems(ctx context.Context, householdID string) ([]domain.ShoppingItemResponse, error)
		Checkout(ctx context.Context, req domain.CheckoutRequest, householdID, memberID string) (domain.CheckoutResponse, error)
	}

	shoppingService struct {
		shoppingRepository  ShoppingRepository
		inventoryRepository inventory.InventoryRepository
		memberRepository    member.MemberRepository
		midtransService     midtrans.MidtransService
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	inventoryRepository inventory.InventoryRepository,
	memberRepository member.MemberRepository,
	midtransService midtrans.MidtransService,
) ShoppingService {
	return &shoppingService{
		shoppingRepository:  shoppingRepository,
		inventoryRepository: inventoryRepository,
		memberRepository:    memberRepository,
		midtransService:     midtransService,
	}
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest, householdID, memberID string) (domain.ShoppingItemResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	owners := req.Owners
	if len(owners) == 0 {
		owners = []string{memberID}
	}

	item := &entities.ShoppingItem{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		Name:        req.Name,
		Icon:        req.Icon,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Department:  req.Department,
		Owners:      entities.EncodeOwners(owners),
	}

	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, householdID, memberID string) error {
	item, err := s.shoppingRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	if len(req.Owners) > 0 {
		if !entities.OwnersContain(req.Owners, memberID) && !entities.OwnersContain(req.Owners, entities.OwnerShared) {
			return domain.ErrOwnerSelfRemoval
		}
		item.Owners = entities.EncodeOwners(req.Owners)
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Icon != "" {
		item.Icon = req.Icon
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Department != "" {
		item.Department = req.Department
	}

	return s.shoppingRepository.SaveItem(ctx, item)
}

func (s *shoppingService) DeleteItem(ctx context.Context, id string, householdID string) error {
	item, err := s.shoppingRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	return s.shoppingRepository.DeleteItem(ctx, id)
}

// ToggleItem flips the in-store checkmark. Checking is independent of
// deletion; the item stays on the list until checkout.
func (s *shoppingService) ToggleItem(ctx context.Context, id string, householdID string) error {
	item, err := s.shoppingRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	item.IsChecked = !item.IsChecked
	return s.shoppingRepository.SaveItem(ctx, item)
}

func (s *shoppingService) GetItems(ctx context.Context, householdID string) ([]domain.ShoppingItemResponse, error) {
	items, err := s.shoppingRepository.GetItems(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

// Checkout turns every checked item into an inventory product and removes
// it from the list. The two steps are sequential, not transactional: a
// failure after the insert leaves the items checked on the list.
func (s *shoppingService) Checkout(ctx context.Context, req domain.CheckoutRequest, householdID, memberID string) (domain.CheckoutResponse, error) {
	items, err := s.shoppingRepository.GetCheckedItems(ctx, householdID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(items) == 0 {
		return domain.CheckoutResponse{}, domain.ErrNothingChecked
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	householdSize := 0
	if count, err := s.memberRepository.CountMembersByHousehold(ctx, householdID); err == nil {
		householdSize = int(count)
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.CheckoutResponse{}, domain.ErrInvalidExpiryDate
		}
		expiry = &parsed
	}

	var perItemPrice *float64
	if req.TotalPrice != nil && *req.TotalPrice > 0 {
		price := math.Round(*req.TotalPrice/float64(len(items))*100) / 100
		perItemPrice = &price
	}

	products := make([]*entities.Product, 0, len(items))
	for _, item := range items {
		products = append(products, &entities.Product{
			ID:          uuid.New(),
			HouseholdID: householdUUID,
			Name:        item.Name,
			Icon:        item.Icon,
			Category:    req.Category,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Owners:      entities.EncodeOwners(ResolveOwner(entities.ParseOwners(item.Owners), householdSize, memberID)),
			ExpiryDate:  expiry,
			Price:       perItemPrice,
			Source:      "Checkout",
		})
	}

	if err := s.inventoryRepository.AddProducts(ctx, products); err != nil {
		return domain.CheckoutResponse{}, err
	}

	for _, item := range items {
		if err := s.shoppingRepository.DeleteItem(ctx, item.ID.String()); err != nil {
			return domain.CheckoutResponse{}, err
		}
	}

	response := domain.CheckoutResponse{ImportedCount: len(products)}

	// Optional settle-up: a payment link for the calling member's share
	// of the receipt total.
	if req.SettleUp && req.TotalPrice != nil && *req.TotalPrice > 0 && householdSize > 0 {
		caller, err := s.memberRepository.GetMemberByID(ctx, memberID)
		if err != nil {
			return response, nil
		}
		share := int64(math.Ceil(*req.TotalPrice / float64(householdSize)))
		payment, err := s.midtransService.CreateTransaction(ctx, domain.PaymentRequest{
			Amount: share,
			Email:  caller.Email,
		}, memberID)
		if err == nil {
			response.InvoiceURL = payment.InvoiceURL
		}
	}

	return response, nil
}

// ResolveOwner collapses a checked item's owner set for inventory import:
// owners covering the whole household become the shared sentinel,
// otherwise the first owner wins; an empty set falls back to the caller.
func ResolveOwner(owners []string, householdSize int, fallback string) []string {
	if entities.IsShared(owners, householdSize) {
		return []string{entities.OwnerShared}
	}
	if len(owners) > 0 {
		return []string{owners[0]}
	}
	return []string{fallback}
}

func toItemResponse(item *entities.ShoppingItem) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Icon:       item.Icon,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Department: item.Department,
		Owners:     entities.ParseOwners(item.Owners),
		IsChecked:  item.IsChecked,
	}
}
