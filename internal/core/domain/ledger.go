package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEventKind classifies a ledger mutation.
type LedgerEventKind string

const (
	LedgerEventCredit LedgerEventKind = "CREDIT"
	LedgerEventDebit  LedgerEventKind = "DEBIT"
)

// LedgerEvent is emitted to subscribers on every ledger mutation, so the
// presentation layer observes state instead of polling for it.
type LedgerEvent struct {
	Kind        LedgerEventKind `json:"kind"`
	ClientID    uuid.UUID       `json:"client_id"`
	Amount      int64           `json:"amount"`
	Balance     int64           `json:"balance"` // Balance after the mutation
	Transaction *Transaction    `json:"transaction,omitempty"`
	At          time.Time       `json:"at"`
}

// LedgerSnapshot is a point-in-time read of one client ledger.
type LedgerSnapshot struct {
	ClientID uuid.UUID     `json:"client_id"`
	Balance  int64         `json:"balance"`
	Currency string        `json:"currency"`
	History  []Transaction `json:"history"` // Completed transactions, in order
}
