package inventory

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	InventoryRepository interface {
		AddProducts(ctx context.Context, products []*entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		SaveProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context, householdID string, category string, page, limit int) ([]*entities.Product, int64, error)
		ListProducts(ctx context.Context, householdID string) ([]*entities.Product, error)

		// Receipt scanning related
		CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddProducts(ctx context.Context, products []*entities.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(products).Error
}

func (r *inventoryRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *inventoryRepository) SaveProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *inventoryRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func (r *inventoryRepository) GetProducts(ctx context.Context, householdID string, category string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("household_id = ?", householdID)

	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at asc, id asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// ListProducts returns every product of the household in creation order.
// Consumption and availability matching rely on this ordering to make
// "first match" deterministic.
func (r *inventoryRepository) ListProducts(ctx context.Context, householdID string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc, id asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *inventoryRepository) CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(receiptScan).Error
}

func (r *inventoryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var receiptScan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receiptScan).Error; err != nil {
		return nil, err
	}
	return &receiptScan, nil
}

func (r *inventoryRepository) UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(receiptScan).Error
}
