package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/internal/utils"
	"sorteat-backend/internal/utils/storage"
)

func (s *inventoryService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, householdID, memberID string) (domain.UploadReceiptResponse, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	receiptScan := &entities.ReceiptScan{
		ID:          scanID,
		MemberID:    memberUUID,
		HouseholdID: householdUUID,
		ImageURL:    imageURL,
		Status:      "Pending",
	}

	if err := s.inventoryRepository.CreateReceiptScan(ctx, receiptScan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceipt(receiptScan, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

// processReceipt ships the receipt image to the OCR model and stores the
// parsed line items on the scan record. Runs detached from the request.
func (s *inventoryService) processReceipt(receiptScan *entities.ReceiptScan, image *multipart.FileHeader) {
	ctx := context.Background()

	fail := func(reason string) {
		receiptScan.Status = "Failed"
		receiptScan.OcrResults = reason
		if err := s.inventoryRepository.UpdateReceiptScan(ctx, receiptScan); err != nil {
			log.Printf("Error updating receipt scan: %v", err)
		}
	}

	ocrModelURL := utils.GetConfig("OCR_MODEL_URL")
	if ocrModelURL == "" {
		fail("Error: OCR model URL not configured")
		return
	}

	file, err := image.Open()
	if err != nil {
		fail(fmt.Sprintf("Error opening file: %s", err.Error()))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		fail(fmt.Sprintf("Error reading file: %s", err.Error()))
		return
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		fail(fmt.Sprintf("Error creating form file: %s", err.Error()))
		return
	}
	if _, err = part.Write(fileBytes); err != nil {
		fail(fmt.Sprintf("Error writing to form file: %s", err.Error()))
		return
	}
	if err = writer.Close(); err != nil {
		fail(fmt.Sprintf("Error closing writer: %s", err.Error()))
		return
	}

	httpReq, err := http.NewRequest("POST", ocrModelURL, body)
	if err != nil {
		fail(fmt.Sprintf("Error creating request: %s", err.Error()))
		return
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fail(fmt.Sprintf("Error sending request to OCR model: %s", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		fail(fmt.Sprintf("OCR model error: %s - %s", resp.Status, string(bodyBytes)))
		return
	}

	var ocrResponse struct {
		Success bool `json:"success"`
		Items   []struct {
			Name     string   `json:"name"`
			Quantity float64  `json:"quantity"`
			Unit     string   `json:"unit"`
			Price    *float64 `json:"price,omitempty"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		fail(fmt.Sprintf("Error parsing OCR response: %s", err.Error()))
		return
	}

	if !ocrResponse.Success || len(ocrResponse.Items) == 0 {
		fail("OCR model couldn't extract any items from receipt")
		return
	}

	resultsJSON, _ := json.Marshal(ocrResponse.Items)
	receiptScan.Status = "Processed"
	receiptScan.OcrResults = string(resultsJSON)

	if err := s.inventoryRepository.UpdateReceiptScan(ctx, receiptScan); err != nil {
		log.Printf("Error updating receipt scan: %v", err)
	}
}

func (s *inventoryService) GetReceiptScan(ctx context.Context, id string, memberID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.inventoryRepository.GetReceiptScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrInvalidReceiptScan
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.MemberID.String() != memberID {
		return domain.ReceiptScanResponse{}, domain.ErrMemberNotAllowed
	}

	return domain.ReceiptScanResponse{
		ScanID:     scan.ID.String(),
		ImageURL:   scan.ImageURL,
		Status:     scan.Status,
		OcrResults: scan.OcrResults,
	}, nil
}

func (s *inventoryService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, householdID, memberID string) error {
	scan, err := s.inventoryRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidReceiptScan
		}
		return err
	}

	if scan.HouseholdID.String() != householdID {
		return domain.ErrMemberNotAllowed
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ErrParseUUID
	}

	products := make([]*entities.Product, 0, len(req.Items))
	for _, item := range req.Items {
		category := item.Category
		if category == "" {
			category = domain.CategoryDispensa
		}

		var expiry *time.Time
		if item.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", item.ExpiryDate)
			if err != nil {
				return domain.ErrInvalidExpiryDate
			}
			expiry = &parsed
		}

		products = append(products, &entities.Product{
			ID:          uuid.New(),
			HouseholdID: householdUUID,
			Name:        item.Name,
			Category:    category,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Owners:      entities.EncodeOwners([]string{memberID}),
			ExpiryDate:  expiry,
			Price:       item.Price,
			Source:      "Receipt",
		})
	}

	if err := s.inventoryRepository.AddProducts(ctx, products); err != nil {
		return err
	}

	scan.Status = "Completed"
	return s.inventoryRepository.UpdateReceiptScan(ctx, scan)
}
