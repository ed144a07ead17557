package shopping

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	ShoppingRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingItem) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error)
		SaveItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, householdID string) ([]*entities.ShoppingItem, error)
		GetCheckedItems(ctx context.Context, householdID string) ([]*entities.ShoppingItem, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) SaveItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingItem{}).Error
}

func (r *shoppingRepository) GetItems(ctx context.Context, householdID string) ([]*entities.ShoppingItem, error) {
	var items []*entities.ShoppingItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) GetCheckedItems(ctx context.Context, householdID string) ([]*entities.ShoppingItem, error) {
	var items []*entities.ShoppingItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND is_checked = ?", householdID, true).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
