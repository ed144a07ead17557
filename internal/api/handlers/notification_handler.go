package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sorteat-backend/domain"
	"sorteat-backend/internal/api/presenters"
	"sorteat-backend/pkg/notification"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		SaveNotification(c *fiber.Ctx) error
		MarkRead(c *fiber.Ctx) error
		ClearNotifications(c *fiber.Ctx) error
		SendExpiryDigest(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)

	res, err := h.notificationService.GetNotifications(c.Context(), memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) SaveNotification(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	req := new(domain.SaveNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveNotification, err)
	}

	res, err := h.notificationService.SaveNotification(c.Context(), *req, memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveNotification)
}

func (h *notificationHandler) MarkRead(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.MarkRead(c.Context(), notificationID, memberID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkNotification)
}

func (h *notificationHandler) ClearNotifications(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)

	if err := h.notificationService.ClearNotifications(c.Context(), memberID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearNotification)
}

func (h *notificationHandler) SendExpiryDigest(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.notificationService.SendExpiryDigest(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExpiryDigest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExpiryDigest)
}
