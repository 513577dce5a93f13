package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the outcome of a settlement attempt.
// The status is fixed at creation; transactions are immutable.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an immutable record produced by a settlement attempt.
// Only COMPLETED transactions are appended to ledger history; FAILED ones
// exist solely as the artifact of a declined attempt.
type Transaction struct {
	ID           uuid.UUID         `json:"id"`
	Amount       int64             `json:"amount"` // In smallest currency unit
	Currency     string            `json:"currency"`
	Status       TransactionStatus `json:"status"`
	MerchantID   uuid.UUID         `json:"merchant_id"`
	MerchantName string            `json:"merchant_name"`
	ClientID     uuid.UUID         `json:"client_id"`
	ClientName   string            `json:"client_name"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Completed returns true if the settlement succeeded.
func (t *Transaction) Completed() bool {
	return t.Status == TransactionStatusCompleted
}
