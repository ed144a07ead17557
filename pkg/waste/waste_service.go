package waste

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
)

type (
	// WasteService keeps the household streak counter. Registering waste
	// drops the streak to zero (Alert state); the streak only grows again
	// through Tick, which a host scheduler drives once per day.
	WasteService interface {
		GetStats(ctx context.Context, householdID string) (domain.WasteStatsResponse, error)
		RegisterWaste(ctx context.Context, req domain.RegisterWasteRequest, householdID, memberID string) (domain.WasteStatsResponse, error)
		Tick(ctx context.Context, householdID string) (domain.WasteStatsResponse, error)
		GetEvents(ctx context.Context, householdID string, page, limit int) ([]domain.WasteEventResponse, int64, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
	}
)

func NewWasteService(wasteRepository WasteRepository) WasteService {
	return &wasteService{wasteRepository: wasteRepository}
}

func (s *wasteService) GetStats(ctx context.Context, householdID string) (domain.WasteStatsResponse, error) {
	stats, err := s.statsOrCreate(ctx, householdID)
	if err != nil {
		return domain.WasteStatsResponse{}, err
	}
	return toStatsResponse(stats), nil
}

func (s *wasteService) RegisterWaste(ctx context.Context, req domain.RegisterWasteRequest, householdID, memberID string) (domain.WasteStatsResponse, error) {
	stats, err := s.statsOrCreate(ctx, householdID)
	if err != nil {
		return domain.WasteStatsResponse{}, err
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.WasteStatsResponse{}, domain.ErrParseUUID
	}
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.WasteStatsResponse{}, domain.ErrParseUUID
	}

	value := 0.0
	if req.Value != nil {
		value = *req.Value
	}

	event := &entities.WasteEvent{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		MemberID:    memberUUID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Reason:      req.Reason,
		Value:       value,
		WastedAt:    time.Now(),
	}
	if err := s.wasteRepository.CreateEvent(ctx, event); err != nil {
		return domain.WasteStatsResponse{}, err
	}

	stats.DaysWithoutWaste = 0
	stats.TotalWastedValue += value
	if err := s.wasteRepository.SaveStats(ctx, stats); err != nil {
		return domain.WasteStatsResponse{}, err
	}

	return toStatsResponse(stats), nil
}

func (s *wasteService) Tick(ctx context.Context, householdID string) (domain.WasteStatsResponse, error) {
	stats, err := s.statsOrCreate(ctx, householdID)
	if err != nil {
		return domain.WasteStatsResponse{}, err
	}

	stats.DaysWithoutWaste++
	if err := s.wasteRepository.SaveStats(ctx, stats); err != nil {
		return domain.WasteStatsResponse{}, err
	}

	return toStatsResponse(stats), nil
}

func (s *wasteService) GetEvents(ctx context.Context, householdID string, page, limit int) ([]domain.WasteEventResponse, int64, error) {
	events, count, err := s.wasteRepository.GetEvents(ctx, householdID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.WasteEventResponse, 0, len(events))
	for _, e := range events {
		response = append(response, domain.WasteEventResponse{
			ID:          e.ID.String(),
			ProductName: e.ProductName,
			Quantity:    e.Quantity,
			Unit:        e.Unit,
			Reason:      e.Reason,
			Value:       e.Value,
			WastedAt:    e.WastedAt,
		})
	}

	return response, count, nil
}

func (s *wasteService) statsOrCreate(ctx context.Context, householdID string) (*entities.WasteStats, error) {
	stats, err := s.wasteRepository.GetStatsByHousehold(ctx, householdID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	stats = &entities.WasteStats{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		Goal:        domain.WasteGoalDays,
	}
	if err := s.wasteRepository.CreateStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func toStatsResponse(stats *entities.WasteStats) domain.WasteStatsResponse {
	return domain.WasteStatsResponse{
		DaysWithoutWaste: stats.DaysWithoutWaste,
		Goal:             stats.Goal,
		TotalWastedValue: stats.TotalWastedValue,
		IsInWasteAlert:   stats.DaysWithoutWaste == 0,
	}
}
