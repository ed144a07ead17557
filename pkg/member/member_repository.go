package member

import (
	"context"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

type (
	MemberRepository interface {
		CreateHousehold(ctx context.Context, household *entities.Household) error
		GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error)
		GetHouseholdByInviteCode(ctx context.Context, code string) (*entities.Household, error)
		CreateMember(ctx context.Context, member *entities.Member) error
		GetMemberByID(ctx context.Context, id string) (*entities.Member, error)
		GetMemberByEmail(ctx context.Context, email string) (*entities.Member, error)
		GetMembersByHousehold(ctx context.Context, householdID string) ([]*entities.Member, error)
		CountMembersByHousehold(ctx context.Context, householdID string) (int64, error)
	}

	memberRepository struct {
		db *gorm.DB
	}
)

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) CreateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Create(household).Error
}

func (r *memberRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *memberRepository) GetHouseholdByInviteCode(ctx context.Context, code string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *memberRepository) CreateMember(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) GetMemberByID(ctx context.Context, id string) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetMemberByEmail(ctx context.Context, email string) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetMembersByHousehold(ctx context.Context, householdID string) ([]*entities.Member, error) {
	var members []*entities.Member
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) CountMembersByHousehold(ctx context.Context, householdID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Member{}).
		Where("household_id = ?", householdID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
