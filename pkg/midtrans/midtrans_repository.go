package midtrans

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	MidtransRepository interface {
		CreateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		SaveTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) CreateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *midtransRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var tx entities.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *midtransRepository) SaveTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}
