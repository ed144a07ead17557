package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePayment = "payment created successfully"
	MessageSuccessWebhook       = "webhook processed successfully"

	MessageFailedCreatePayment = "failed to create payment"
	MessageFailedWebhook       = "failed to process webhook"

	ErrPaymentFailed          = errors.New("payment processing failed")
	ErrPaymentTransactionMiss = errors.New("payment transaction not found")
)

type (
	PaymentRequest struct {
		Amount int64  `json:"amount" validate:"required,gt=0"`
		Email  string `json:"email" validate:"required,email"`
	}

	PaymentResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
