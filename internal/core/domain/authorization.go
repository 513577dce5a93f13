package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthState is the state of one payment-authorization attempt.
type AuthState string

const (
	AuthStateAwaitingScan    AuthState = "AWAITING_SCAN"
	AuthStateAwaitingCapture AuthState = "AWAITING_CAPTURE"
	AuthStateVerifying       AuthState = "VERIFYING"
	AuthStateSettling        AuthState = "SETTLING"
	AuthStateCompleted       AuthState = "COMPLETED"
	AuthStateDeclined        AuthState = "DECLINED"
)

// Terminal returns true for states that end the attempt. A new attempt
// starts fresh at AWAITING_SCAN; there is no automatic retry.
func (s AuthState) Terminal() bool {
	return s == AuthStateCompleted || s == AuthStateDeclined
}

// DeclineReason identifies why an attempt ended in DECLINED. These are
// expected, user-facing outcomes of an attempt, not errors.
type DeclineReason string

const (
	DeclineCaptureFailed     DeclineReason = "CAPTURE_FAILED"
	DeclineKeyMismatch       DeclineReason = "KEY_MISMATCH"
	DeclineInsufficientFunds DeclineReason = "INSUFFICIENT_FUNDS"
)

// Message returns the human-readable text shown to the payer.
func (r DeclineReason) Message() string {
	switch r {
	case DeclineCaptureFailed:
		return "Iris capture failed, please try again"
	case DeclineKeyMismatch:
		return "Identity could not be verified"
	case DeclineInsufficientFunds:
		return "Insufficient funds"
	default:
		return "Payment declined"
	}
}

// Receipt is the artifact emitted to the payer on a completed authorization.
type Receipt struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	MerchantName  string    `json:"merchant_name"`
	ClientName    string    `json:"client_name"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	IssuedAt      time.Time `json:"issued_at"`
}

// Outcome is the terminal result of an authorization attempt: either a
// completed transaction with its receipt, or a decline reason and message.
type Outcome struct {
	State       AuthState     `json:"state"`
	Reason      DeclineReason `json:"reason,omitempty"`
	Message     string        `json:"message,omitempty"`
	Transaction *Transaction  `json:"transaction,omitempty"`
	Receipt     *Receipt      `json:"receipt,omitempty"`
}

// Declined returns true if the attempt ended in a decline.
func (o *Outcome) Declined() bool {
	return o.State == AuthStateDeclined
}
