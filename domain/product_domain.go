package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddProducts      = "products added successfully"
	MessageSuccessUpdateProduct    = "product updated successfully"
	MessageSuccessDeleteProduct    = "product deleted successfully"
	MessageSuccessGetProducts      = "products retrieved successfully"
	MessageSuccessGetExpiring      = "expiring products retrieved successfully"
	MessageSuccessConsume          = "ingredients consumed successfully"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessGetReceiptScan   = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"

	MessageFailedAddProducts      = "failed to add products"
	MessageFailedUpdateProduct    = "failed to update product"
	MessageFailedDeleteProduct    = "failed to delete product"
	MessageFailedGetProducts      = "failed to retrieve products"
	MessageFailedGetExpiring      = "failed to retrieve expiring products"
	MessageFailedConsume          = "failed to consume ingredients"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedGetReceiptScan   = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems = "failed to save scanned items"

	ErrProductNotFound         = errors.New("product not found")
	ErrInvalidExpiryDate       = errors.New("invalid expiry date")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrOwnerSelfRemoval        = errors.New("current member cannot be removed from owners")
	ErrInvalidReceiptScan      = errors.New("invalid receipt scan ID")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
)

// Storage categories and the units the stores understand.
const (
	CategoryFrigo    = "frigo"
	CategoryDispensa = "dispensa"
	CategoryFreezer  = "freezer"
)

type (
	NewProduct struct {
		Name       string   `json:"name" validate:"required"`
		Icon       string   `json:"icon" validate:"omitempty"`
		Category   string   `json:"category" validate:"omitempty,oneof=frigo dispensa freezer"`
		Quantity   float64  `json:"quantity" validate:"required,gt=0"`
		Unit       string   `json:"unit" validate:"required"`
		Owners     []string `json:"owners" validate:"omitempty"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	AddProductsRequest struct {
		Products []NewProduct `json:"products" validate:"required,min=1,dive"`
	}

	UpdateProductRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Icon       string   `json:"icon" validate:"omitempty"`
		Category   string   `json:"category" validate:"omitempty,oneof=frigo dispensa freezer"`
		Quantity   *float64 `json:"quantity" validate:"omitempty,gte=0"`
		Unit       string   `json:"unit" validate:"omitempty"`
		Owners     []string `json:"owners" validate:"omitempty,min=1"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	ProductResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Icon       string     `json:"icon,omitempty"`
		Category   string     `json:"category"`
		Quantity   float64    `json:"quantity"`
		Unit       string     `json:"unit"`
		Owners     []string   `json:"owners"`
		IsShared   bool       `json:"is_shared"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		Price      *float64   `json:"price,omitempty"`
		Source     string     `json:"source"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	ExpiringProductResponse struct {
		ProductResponse
		DaysUntilExpiry int    `json:"days_until_expiry"`
		ExpiryLabel     string `json:"expiry_label"`
	}

	IngredientRef struct {
		Name      string  `json:"name" validate:"required"`
		Qty       float64 `json:"qty" validate:"required,gt=0"`
		Unit      string  `json:"unit" validate:"required"`
		ProductID string  `json:"product_id" validate:"omitempty,uuid"`
	}

	ConsumeIngredientsRequest struct {
		Ingredients []IngredientRef `json:"ingredients" validate:"required,min=1,dive"`
	}

	ConsumeIngredientsResponse struct {
		ConsumedCount int `json:"consumed_count"`
	}

	DeleteProductRequest struct {
		Reason string `json:"reason" validate:"omitempty,oneof=consumed expired discarded"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID     string `json:"scan_id"`
		ImageURL   string `json:"image_url"`
		Status     string `json:"status"`
		OcrResults string `json:"ocr_results,omitempty"`
	}

	ScannedItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Quantity   float64  `json:"quantity" validate:"required,gt=0"`
		Unit       string   `json:"unit" validate:"required"`
		Category   string   `json:"category" validate:"omitempty,oneof=frigo dispensa freezer"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}
)
