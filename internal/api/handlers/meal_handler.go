package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sorteat-backend/domain"
	"sorteat-backend/internal/api/presenters"
	"sorteat-backend/pkg/meal"
)

type (
	MealHandler interface {
		GetMeals(c *fiber.Ctx) error
		UpdateSlot(c *fiber.Ctx) error
		Cook(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.mealService.GetMeals(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) UpdateSlot(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.UpdateMealSlotRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSlot, err)
	}

	res, err := h.mealService.UpdateSlot(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSlot, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSlot)
}

func (h *mealHandler) Cook(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.CookMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, err)
	}

	res, err := h.mealService.Cook(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookMeal)
}
