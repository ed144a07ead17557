package waste_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/waste"
)

type fakeWasteRepository struct {
	stats  map[string]*entities.WasteStats
	events []*entities.WasteEvent
}

func newFakeWasteRepository() *fakeWasteRepository {
	return &fakeWasteRepository{stats: make(map[string]*entities.WasteStats)}
}

func (r *fakeWasteRepository) GetStatsByHousehold(_ context.Context, householdID string) (*entities.WasteStats, error) {
	stats, ok := r.stats[householdID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return stats, nil
}

func (r *fakeWasteRepository) CreateStats(_ context.Context, stats *entities.WasteStats) error {
	r.stats[stats.HouseholdID.String()] = stats
	return nil
}

func (r *fakeWasteRepository) SaveStats(_ context.Context, stats *entities.WasteStats) error {
	r.stats[stats.HouseholdID.String()] = stats
	return nil
}

func (r *fakeWasteRepository) CreateEvent(_ context.Context, event *entities.WasteEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *fakeWasteRepository) GetEvents(_ context.Context, householdID string, _, _ int) ([]*entities.WasteEvent, int64, error) {
	var out []*entities.WasteEvent
	for _, e := range r.events {
		if e.HouseholdID.String() == householdID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

var _ waste.WasteRepository = (*fakeWasteRepository)(nil)

func TestGetStatsCreatesDefaults(t *testing.T) {
	t.Parallel()

	repo := newFakeWasteRepository()
	svc := waste.NewWasteService(repo)

	stats, err := svc.GetStats(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DaysWithoutWaste != 0 {
		t.Fatalf("expected fresh streak of 0, got %d", stats.DaysWithoutWaste)
	}
	if stats.Goal != domain.WasteGoalDays {
		t.Fatalf("expected goal %d, got %d", domain.WasteGoalDays, stats.Goal)
	}
	if !stats.IsInWasteAlert {
		t.Fatalf("expected alert state at zero streak")
	}
}

func TestRegisterWasteResetsStreak(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	repo := newFakeWasteRepository()
	repo.stats[household.String()] = &entities.WasteStats{
		ID:               uuid.New(),
		HouseholdID:      household,
		DaysWithoutWaste: 12,
		Goal:             domain.WasteGoalDays,
		TotalWastedValue: 5,
	}
	svc := waste.NewWasteService(repo)

	value := 3.5
	stats, err := svc.RegisterWaste(context.Background(), domain.RegisterWasteRequest{
		ProductName: "Insalata",
		Quantity:    1,
		Unit:        "pz",
		Reason:      "expired",
		Value:       &value,
	}, household.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DaysWithoutWaste != 0 {
		t.Fatalf("expected streak reset to 0, got %d", stats.DaysWithoutWaste)
	}
	if stats.TotalWastedValue != 8.5 {
		t.Fatalf("expected total wasted value 8.5, got %v", stats.TotalWastedValue)
	}
	if !stats.IsInWasteAlert {
		t.Fatalf("expected alert state after waste")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].Reason != "expired" {
		t.Fatalf("expected reason expired, got %q", repo.events[0].Reason)
	}
}

func TestTickIncrementsStreak(t *testing.T) {
	t.Parallel()

	household := uuid.New()
	repo := newFakeWasteRepository()
	svc := waste.NewWasteService(repo)

	for i := 1; i <= 3; i++ {
		stats, err := svc.Tick(context.Background(), household.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.DaysWithoutWaste != i {
			t.Fatalf("expected streak %d, got %d", i, stats.DaysWithoutWaste)
		}
		if stats.IsInWasteAlert {
			t.Fatalf("expected no alert with positive streak")
		}
	}
}
