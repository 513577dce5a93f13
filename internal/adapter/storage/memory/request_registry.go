package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"irispay/internal/core/domain"
	"irispay/pkg/apperror"

	"github.com/google/uuid"
)

// RequestRegistry implements ports.RequestRegistry with a process-lifetime map.
type RequestRegistry struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.PaymentRequest
}

// NewRequestRegistry creates an empty registry.
func NewRequestRegistry() *RequestRegistry {
	return &RequestRegistry{requests: make(map[uuid.UUID]*domain.PaymentRequest)}
}

// Create records a new pending payment request. Amount must be positive and
// the currency code non-empty.
func (r *RequestRegistry) Create(ctx context.Context, merchantID uuid.UUID, amount int64, currency string) (*domain.PaymentRequest, error) {
	if amount <= 0 || currency == "" {
		return nil, apperror.ErrInvalidAmount()
	}

	req := &domain.PaymentRequest{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   currency,
		Status:     domain.RequestStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.requests[req.ID] = req
	r.mu.Unlock()

	return cloneRequest(req), nil
}

// Get returns the request with the given id, or nil.
func (r *RequestRegistry) Get(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRequest(r.requests[id]), nil
}

// ListByMerchant returns all requests created by the merchant, oldest first.
func (r *RequestRegistry) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.PaymentRequest
	for _, req := range r.requests {
		if req.MerchantID == merchantID {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Resolve transitions a pending request to the given terminal status. It
// fails with AlreadyResolved if the request has already left PENDING, and
// never mutates a resolved request.
func (r *RequestRegistry) Resolve(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	if status != domain.RequestStatusApproved && status != domain.RequestStatusRejected {
		return apperror.Validation("resolution status must be APPROVED or REJECTED")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return apperror.ErrNotFound("Payment request")
	}
	if !req.IsPending() {
		return apperror.ErrAlreadyResolved()
	}

	now := time.Now().UTC()
	req.Status = status
	req.ResolvedAt = &now
	return nil
}

func cloneRequest(req *domain.PaymentRequest) *domain.PaymentRequest {
	if req == nil {
		return nil
	}
	c := *req
	if req.ResolvedAt != nil {
		at := *req.ResolvedAt
		c.ResolvedAt = &at
	}
	return &c
}
