package dto

import (
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"

	"github.com/google/uuid"
)

// RegisterRequest is the request body for identity enrollment.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	DisplayName  string `json:"display_name" binding:"required,min=1,max=100"`
	Role         string `json:"role" binding:"required,oneof=CLIENT MERCHANT"`
	MerchantName string `json:"merchant_name,omitempty" binding:"max=100"`
	SeedMaterial string `json:"seed_material,omitempty" binding:"max=1024"` // Simulated sensor sample
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful enrollment. The
// biometric key appears here once and is never returned again.
type RegisterResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	BiometricKey string `json:"biometric_key"`
	Degraded     bool   `json:"degraded"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateRequestRequest is the merchant's body for a new payment request.
type CreateRequestRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// PaymentRequestResponse is the response body for a payment request.
type PaymentRequestResponse struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// ScanRequest is the client's body to start an authorization attempt.
type ScanRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
}

// CaptureRequest is the client's body to submit a capture outcome. Status
// KEY carries the biometric key; CANCELLED and FAILED carry no key.
type CaptureRequest struct {
	Status string `json:"status" binding:"required,oneof=KEY CANCELLED FAILED"`
	Key    string `json:"key,omitempty" binding:"max=256"`
	Reason string `json:"reason,omitempty" binding:"max=256"`
}

// AttemptResponse is the observable view of an authorization attempt.
type AttemptResponse struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	RequestID    string `json:"request_id,omitempty"`
	MerchantID   string `json:"merchant_id,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency,omitempty"`
}

// OutcomeResponse is the result of a capture submission.
type OutcomeResponse struct {
	State       string               `json:"state"`
	Reason      string               `json:"reason,omitempty"`
	Message     string               `json:"message,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Receipt     *ReceiptResponse     `json:"receipt,omitempty"`
}

// TransactionResponse is the response body for a transaction.
type TransactionResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	MerchantName string `json:"merchant_name"`
	ClientName   string `json:"client_name"`
	CreatedAt    string `json:"created_at"`
}

// ReceiptResponse is the response body for a settlement receipt.
type ReceiptResponse struct {
	TransactionID string `json:"transaction_id"`
	MerchantName  string `json:"merchant_name"`
	ClientName    string `json:"client_name"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	IssuedAt      string `json:"issued_at"`
}

// FundRequest is the request body for wallet funding.
type FundRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// TransactionListResponse wraps a transaction history.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// --- Mapping helpers ---

// NewAttemptResponse maps an attempt view to its response body.
func NewAttemptResponse(info *ports.AttemptInfo) AttemptResponse {
	resp := AttemptResponse{
		ID:       info.ID.String(),
		State:    string(info.State),
		Amount:   info.Amount,
		Currency: info.Currency,
	}
	if info.RequestID != uuid.Nil {
		resp.RequestID = info.RequestID.String()
	}
	if info.MerchantID != uuid.Nil {
		resp.MerchantID = info.MerchantID.String()
		resp.MerchantName = info.MerchantName
	}
	return resp
}

// NewOutcomeResponse maps an authorization outcome to its response body.
func NewOutcomeResponse(outcome *domain.Outcome) OutcomeResponse {
	resp := OutcomeResponse{
		State:   string(outcome.State),
		Reason:  string(outcome.Reason),
		Message: outcome.Message,
	}
	if outcome.Transaction != nil {
		txn := NewTransactionResponse(outcome.Transaction)
		resp.Transaction = &txn
	}
	if outcome.Receipt != nil {
		resp.Receipt = &ReceiptResponse{
			TransactionID: outcome.Receipt.TransactionID.String(),
			MerchantName:  outcome.Receipt.MerchantName,
			ClientName:    outcome.Receipt.ClientName,
			Amount:        outcome.Receipt.Amount,
			Currency:      outcome.Receipt.Currency,
			IssuedAt:      outcome.Receipt.IssuedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp
}

// NewTransactionResponse maps a transaction to its response body.
func NewTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		Amount:       txn.Amount,
		Currency:     txn.Currency,
		Status:       string(txn.Status),
		MerchantName: txn.MerchantName,
		ClientName:   txn.ClientName,
		CreatedAt:    txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewPaymentRequestResponse maps a payment request to its response body.
func NewPaymentRequestResponse(req *domain.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		ID:         req.ID.String(),
		MerchantID: req.MerchantID.String(),
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt.UTC().Format(time.RFC3339),
	}
}
