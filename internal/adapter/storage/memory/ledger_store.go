package memory

import (
	"context"
	"sync"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/google/uuid"
)

// ledger is one client's balance and completed-transaction history. Its
// mutex serializes all mutations for that client, so a settlement's balance
// check and debit form one critical section.
type ledger struct {
	mu       sync.Mutex
	balance  int64
	currency string
	history  []domain.Transaction
}

// LedgerStore implements ports.LedgerStore with process-lifetime maps.
// Settlement (Debit) is atomic per client: check, debit, client append and
// merchant append all happen under the client's ledger mutex.
type LedgerStore struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID]*ledger

	merchMu   sync.Mutex
	merchants map[uuid.UUID][]domain.Transaction

	subMu   sync.Mutex
	subs    map[int]chan domain.LedgerEvent
	nextSub int
}

// NewLedgerStore creates an empty ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		ledgers:   make(map[uuid.UUID]*ledger),
		merchants: make(map[uuid.UUID][]domain.Transaction),
		subs:      make(map[int]chan domain.LedgerEvent),
	}
}

// Open creates a ledger for the client with a zero balance. Opening an
// already-open ledger is a no-op.
func (s *LedgerStore) Open(ctx context.Context, clientID uuid.UUID, currency string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ledgers[clientID]; exists {
		return nil
	}
	s.ledgers[clientID] = &ledger{currency: currency}
	return nil
}

func (s *LedgerStore) get(clientID uuid.UUID) (*ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.ledgers[clientID]
	if !ok {
		return nil, apperror.ErrNotFound("Ledger")
	}
	return l, nil
}

// Balance returns the client's current balance.
func (s *LedgerStore) Balance(ctx context.Context, clientID uuid.UUID) (int64, error) {
	l, err := s.get(clientID)
	if err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance, nil
}

// Credit adds funds and returns the new balance. Funding creates no
// Transaction; only settlement attempts do.
func (s *LedgerStore) Credit(ctx context.Context, clientID uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	l, err := s.get(clientID)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	l.balance += amount
	balance := l.balance
	l.mu.Unlock()

	s.publish(domain.LedgerEvent{
		Kind:     domain.LedgerEventCredit,
		ClientID: clientID,
		Amount:   amount,
		Balance:  balance,
		At:       time.Now().UTC(),
	})
	return balance, nil
}

// Debit settles a payment: if the balance covers the amount, it debits and
// appends the completed transaction to the client history and the merchant
// record as one atomic unit; otherwise it fails with InsufficientFunds and
// mutates nothing. The per-client mutex closes the check-then-act race.
// A ledger settles only in its opening currency.
func (s *LedgerStore) Debit(ctx context.Context, params ports.DebitParams) (*domain.Transaction, error) {
	if params.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	l, err := s.get(params.ClientID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if params.Currency != l.currency {
		l.mu.Unlock()
		return nil, apperror.ErrCurrencyMismatch(l.currency, params.Currency)
	}
	if l.balance < params.Amount {
		l.mu.Unlock()
		return nil, apperror.ErrInsufficientFunds()
	}

	l.balance -= params.Amount
	txn := domain.Transaction{
		ID:           uuid.New(),
		Amount:       params.Amount,
		Currency:     params.Currency,
		Status:       domain.TransactionStatusCompleted,
		MerchantID:   params.MerchantID,
		MerchantName: params.MerchantName,
		ClientID:     params.ClientID,
		ClientName:   params.ClientName,
		CreatedAt:    time.Now().UTC(),
	}
	l.history = append(l.history, txn)

	s.merchMu.Lock()
	s.merchants[params.MerchantID] = append(s.merchants[params.MerchantID], txn)
	s.merchMu.Unlock()

	balance := l.balance
	l.mu.Unlock()

	s.publish(domain.LedgerEvent{
		Kind:        domain.LedgerEventDebit,
		ClientID:    params.ClientID,
		Amount:      params.Amount,
		Balance:     balance,
		Transaction: &txn,
		At:          txn.CreatedAt,
	})
	return &txn, nil
}

// Snapshot returns a point-in-time copy of the client's ledger.
func (s *LedgerStore) Snapshot(ctx context.Context, clientID uuid.UUID) (*domain.LedgerSnapshot, error) {
	l, err := s.get(clientID)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make([]domain.Transaction, len(l.history))
	copy(history, l.history)
	return &domain.LedgerSnapshot{
		ClientID: clientID,
		Balance:  l.balance,
		Currency: l.currency,
		History:  history,
	}, nil
}

// MerchantRecord returns the transactions settled toward a merchant.
func (s *LedgerStore) MerchantRecord(ctx context.Context, merchantID uuid.UUID) ([]domain.Transaction, error) {
	s.merchMu.Lock()
	defer s.merchMu.Unlock()
	record := make([]domain.Transaction, len(s.merchants[merchantID]))
	copy(record, s.merchants[merchantID])
	return record, nil
}

// Subscribe registers an observer of ledger mutations. Events are dropped
// for subscribers whose buffer is full rather than blocking a mutation.
func (s *LedgerStore) Subscribe(buffer int) (<-chan domain.LedgerEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.LedgerEvent, buffer)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

func (s *LedgerStore) publish(event domain.LedgerEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
