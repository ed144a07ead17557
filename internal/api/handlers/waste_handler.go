package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sorteat-backend/domain"
	"sorteat-backend/internal/api/presenters"
	"sorteat-backend/pkg/waste"
)

type (
	WasteHandler interface {
		GetStats(c *fiber.Ctx) error
		RegisterWaste(c *fiber.Ctx) error
		Tick(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) GetStats(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.wasteService.GetStats(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteStats)
}

func (h *wasteHandler) RegisterWaste(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	req := new(domain.RegisterWasteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterWaste, err)
	}

	res, err := h.wasteService.RegisterWaste(c.Context(), *req, householdID, memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterWaste, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterWaste)
}

func (h *wasteHandler) Tick(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.wasteService.Tick(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWasteTick, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessWasteTick)
}

func (h *wasteHandler) GetEvents(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	events, count, err := h.wasteService.GetEvents(c.Context(), householdID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteStats, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"events": events,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWasteStats)
}
