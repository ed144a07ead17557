package domain

import (
	"errors"
)

var (
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessToggleShoppingItem = "shopping item toggled successfully"
	MessageSuccessCheckout           = "checkout completed successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"
	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedToggleShoppingItem = "failed to toggle shopping item"
	MessageFailedCheckout           = "failed to checkout"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
	ErrNothingChecked       = errors.New("no checked items to checkout")
)

const (
	DepartmentOrtofrutta = "ortofrutta"
	DepartmentFreschi    = "freschi"
	DepartmentDispensa   = "dispensa"
	DepartmentCasa       = "casa"
)

type (
	AddShoppingItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Icon       string   `json:"icon" validate:"omitempty"`
		Quantity   float64  `json:"quantity" validate:"required,gt=0"`
		Unit       string   `json:"unit" validate:"required"`
		Department string   `json:"department" validate:"required,oneof=ortofrutta freschi dispensa casa"`
		Owners     []string `json:"owners" validate:"omitempty"`
	}

	UpdateShoppingItemRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Icon       string   `json:"icon" validate:"omitempty"`
		Quantity   *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string   `json:"unit" validate:"omitempty"`
		Department string   `json:"department" validate:"omitempty,oneof=ortofrutta freschi dispensa casa"`
		Owners     []string `json:"owners" validate:"omitempty,min=1"`
	}

	ShoppingItemResponse struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Icon       string   `json:"icon,omitempty"`
		Quantity   float64  `json:"quantity"`
		Unit       string   `json:"unit"`
		Department string   `json:"department"`
		Owners     []string `json:"owners"`
		IsChecked  bool     `json:"is_checked"`
	}

	CheckoutRequest struct {
		Category   string   `json:"category" validate:"required,oneof=frigo dispensa freezer"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		TotalPrice *float64 `json:"total_price" validate:"omitempty,gte=0"`
		SettleUp   bool     `json:"settle_up"`
	}

	CheckoutResponse struct {
		ImportedCount int    `json:"imported_count"`
		InvoiceURL    string `json:"invoice_url,omitempty"`
	}
)
