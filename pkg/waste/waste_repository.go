package waste

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	WasteRepository interface {
		GetStatsByHousehold(ctx context.Context, householdID string) (*entities.WasteStats, error)
		CreateStats(ctx context.Context, stats *entities.WasteStats) error
		SaveStats(ctx context.Context, stats *entities.WasteStats) error
		CreateEvent(ctx context.Context, event *entities.WasteEvent) error
		GetEvents(ctx context.Context, householdID string, page, limit int) ([]*entities.WasteEvent, int64, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) GetStatsByHousehold(ctx context.Context, householdID string) (*entities.WasteStats, error) {
	var stats entities.WasteStats
	if err := r.db.WithContext(ctx).Where("household_id = ?", householdID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *wasteRepository) CreateStats(ctx context.Context, stats *entities.WasteStats) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

func (r *wasteRepository) SaveStats(ctx context.Context, stats *entities.WasteStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

func (r *wasteRepository) CreateEvent(ctx context.Context, event *entities.WasteEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *wasteRepository) GetEvents(ctx context.Context, householdID string, page, limit int) ([]*entities.WasteEvent, int64, error) {
	var events []*entities.WasteEvent
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("household_id = ?", householdID)

	if err := query.Model(&entities.WasteEvent{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("wasted_at desc").Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, count, nil
}
