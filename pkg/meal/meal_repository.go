package meal

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealBySlot(ctx context.Context, householdID string, day int, mealType string) (*entities.Meal, error)
		SaveMeal(ctx context.Context, meal *entities.Meal) error
		GetMeals(ctx context.Context, householdID string) ([]*entities.Meal, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealBySlot(ctx context.Context, householdID string, day int, mealType string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND day = ? AND type = ?", householdID, day, mealType).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) SaveMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) GetMeals(ctx context.Context, householdID string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("day asc, type asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
