package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetWasteStats = "waste statistics retrieved successfully"
	MessageSuccessRegisterWaste = "waste registered successfully"
	MessageSuccessWasteTick     = "waste streak ticked successfully"

	MessageFailedGetWasteStats = "failed to retrieve waste statistics"
	MessageFailedRegisterWaste = "failed to register waste"
	MessageFailedWasteTick     = "failed to tick waste streak"

	ErrWasteStatsNotFound = errors.New("waste statistics not found")
)

const WasteGoalDays = 30

type (
	RegisterWasteRequest struct {
		ProductName string   `json:"product_name" validate:"required"`
		Quantity    float64  `json:"quantity" validate:"required,gt=0"`
		Unit        string   `json:"unit" validate:"required"`
		Reason      string   `json:"reason" validate:"required,oneof=expired discarded"`
		Value       *float64 `json:"value" validate:"omitempty,gte=0"`
	}

	WasteStatsResponse struct {
		DaysWithoutWaste int     `json:"days_without_waste"`
		Goal             int     `json:"goal"`
		TotalWastedValue float64 `json:"total_wasted_value"`
		IsInWasteAlert   bool    `json:"is_in_waste_alert"`
	}

	WasteEventResponse struct {
		ID          string    `json:"id"`
		ProductName string    `json:"product_name"`
		Quantity    float64   `json:"quantity"`
		Unit        string    `json:"unit"`
		Reason      string    `json:"reason"`
		Value       float64   `json:"value"`
		WastedAt    time.Time `json:"wasted_at"`
	}
)
