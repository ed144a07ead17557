package midtrans

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/internal/utils"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.PaymentRequest, memberID string) (domain.PaymentResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		snapClient         snap.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		snapClient:         snapClient,
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.PaymentRequest, memberID string) (domain.PaymentResponse, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.PaymentResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("sorteat-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.PaymentResponse{}, domain.ErrPaymentFailed
	}

	tx := &entities.PaymentTransaction{
		ID:         uuid.New(),
		MemberID:   memberUUID,
		OrderID:    orderID,
		Amount:     req.Amount,
		Status:     "Pending",
		InvoiceURL: snapResp.RedirectURL,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, tx); err != nil {
		return domain.PaymentResponse{}, err
	}

	return domain.PaymentResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

func (s *midtransService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	tx, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentTransactionMiss
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		tx.Status = "Settlement"
	case "deny", "cancel":
		tx.Status = "Cancelled"
	case "expire":
		tx.Status = "Expired"
	default:
		tx.Status = "Pending"
	}

	return s.midtransRepository.SaveTransaction(ctx, tx)
}
