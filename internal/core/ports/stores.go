package ports

import (
	"context"

	"irispay/internal/core/domain"

	"github.com/google/uuid"
)

// IdentityStore owns registered identities, keyed by biometric key.
// The key is unique across all stored identities at all times; a failed
// insert never mutates the store.
type IdentityStore interface {
	Register(ctx context.Context, identity *domain.Identity) error
	FindByKey(ctx context.Context, biometricKey string) (*domain.Identity, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
}

// DebitParams holds input for a settlement debit.
type DebitParams struct {
	ClientID     uuid.UUID
	ClientName   string
	MerchantID   uuid.UUID
	MerchantName string
	Amount       int64
	Currency     string
}

// LedgerStore owns one ledger per client identity: a non-negative balance
// and an append-only history of completed transactions. Debit is the sole
// settlement entry point and must execute the balance check, the debit, and
// both history appends as a single atomic unit under per-client mutual
// exclusion, so concurrent attempts cannot double-spend.
type LedgerStore interface {
	Open(ctx context.Context, clientID uuid.UUID, currency string) error
	Balance(ctx context.Context, clientID uuid.UUID) (int64, error)
	// Credit funds a ledger and returns the new balance. Funding does not
	// create a Transaction; only settlement attempts do.
	Credit(ctx context.Context, clientID uuid.UUID, amount int64) (int64, error)
	Debit(ctx context.Context, params DebitParams) (*domain.Transaction, error)
	Snapshot(ctx context.Context, clientID uuid.UUID) (*domain.LedgerSnapshot, error)
	MerchantRecord(ctx context.Context, merchantID uuid.UUID) ([]domain.Transaction, error)
	// Subscribe registers an observer of ledger mutations. The returned
	// function unsubscribes; events are dropped rather than blocking a
	// slow consumer.
	Subscribe(buffer int) (<-chan domain.LedgerEvent, func())
}

// RequestRegistry owns merchant-created pending payment requests.
type RequestRegistry interface {
	Create(ctx context.Context, merchantID uuid.UUID, amount int64, currency string) (*domain.PaymentRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.PaymentRequest, error)
	// Resolve transitions a pending request to a terminal status exactly
	// once; any later call fails with AlreadyResolved.
	Resolve(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
}
