package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sorteat-backend/domain"
	"sorteat-backend/internal/api/presenters"
	"sorteat-backend/pkg/inventory"
)

type (
	InventoryHandler interface {
		AddProducts(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetExpiringProducts(c *fiber.Ctx) error
		ConsumeIngredients(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetReceiptScan(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddProducts(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	req := new(domain.AddProductsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProducts, err)
	}

	res, err := h.inventoryService.AddProducts(c.Context(), *req, householdID, memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProducts)
}

func (h *inventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	productID := c.Params("id")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.inventoryService.UpdateProduct(c.Context(), productID, *req, householdID, memberID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *inventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	productID := c.Params("id")
	req := new(domain.DeleteProductRequest)

	// Body is optional; a bare delete counts as consumed.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
		}
	}

	if err := h.inventoryService.DeleteProduct(c.Context(), productID, req.Reason, householdID, memberID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *inventoryHandler) GetProducts(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	category := c.Query("category", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	products, count, err := h.inventoryService.GetProducts(c.Context(), householdID, category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *inventoryHandler) GetExpiringProducts(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.inventoryService.GetExpiringProducts(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiring, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiring)
}

func (h *inventoryHandler) ConsumeIngredients(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.ConsumeIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsume, err)
	}

	consumed, err := h.inventoryService.ConsumeIngredients(c.Context(), req.Ingredients, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsume, err)
	}

	return presenters.SuccessResponse(c, domain.ConsumeIngredientsResponse{ConsumedCount: consumed}, fiber.StatusOK, domain.MessageSuccessConsume)
}

func (h *inventoryHandler) UploadReceipt(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.inventoryService.UploadReceipt(c.Context(), *req, householdID, memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *inventoryHandler) GetReceiptScan(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	scanID := c.Params("id")

	res, err := h.inventoryService.GetReceiptScan(c.Context(), scanID, memberID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceiptScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptScan)
}

func (h *inventoryHandler) SaveScannedItems(c *fiber.Ctx) error {
	memberID := c.Locals("member_id").(string)
	householdID := c.Locals("household_id").(string)
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.inventoryService.SaveScannedItems(c.Context(), *req, householdID, memberID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveScannedItems)
}
