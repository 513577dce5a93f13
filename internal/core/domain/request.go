package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a payment request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// PaymentRequest is a merchant-created pending charge. It transitions from
// PENDING to exactly one terminal status and is never mutated afterwards.
type PaymentRequest struct {
	ID         uuid.UUID     `json:"id"`
	MerchantID uuid.UUID     `json:"merchant_id"`
	Amount     int64         `json:"amount"` // In smallest currency unit
	Currency   string        `json:"currency"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// IsPending returns true if the request has not been resolved yet.
func (r *PaymentRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
