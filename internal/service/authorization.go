package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Authorization is one payment-authorization attempt:
// AwaitingScan -> AwaitingCapture -> Verifying -> Settling ->
// {Completed, Declined}. Verify and settle run automatically once a key is
// captured. The attempt never retries on its own; a terminal state ends it
// and a new attempt starts fresh at AwaitingScan.
//
// The attempt is owned by the client session driving it. A TryLock guard
// rejects concurrent transitions with ConcurrentAttempt instead of queueing
// them; per-client settlement exclusion lives in the ledger store.
type Authorization struct {
	mu sync.Mutex

	id     uuid.UUID
	client domain.Identity // authenticated identity, trusted as given
	state  domain.AuthState

	requestID    uuid.UUID
	merchantID   uuid.UUID
	merchantName string
	amount       int64
	currency     string

	identities ports.IdentityStore
	ledger     ports.LedgerStore
	requests   ports.RequestRegistry
	log        zerolog.Logger
}

func newAuthorization(
	client domain.Identity,
	identities ports.IdentityStore,
	ledger ports.LedgerStore,
	requests ports.RequestRegistry,
	log zerolog.Logger,
) *Authorization {
	return &Authorization{
		id:         uuid.New(),
		client:     client,
		state:      domain.AuthStateAwaitingScan,
		identities: identities,
		ledger:     ledger,
		requests:   requests,
		log:        log,
	}
}

// ID returns the attempt id.
func (a *Authorization) ID() uuid.UUID {
	return a.id
}

// State returns the attempt's current state.
func (a *Authorization) State() domain.AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Info returns an observable view of the attempt.
func (a *Authorization) Info() *ports.AttemptInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.infoLocked()
}

func (a *Authorization) infoLocked() *ports.AttemptInfo {
	return &ports.AttemptInfo{
		ID:           a.id,
		State:        a.state,
		RequestID:    a.requestID,
		MerchantID:   a.merchantID,
		MerchantName: a.merchantName,
		Amount:       a.amount,
		Currency:     a.currency,
	}
}

// guard acquires the per-attempt lock without blocking. A held lock means
// another transition is in flight, which is caller misuse.
func (a *Authorization) guard() error {
	if !a.mu.TryLock() {
		return apperror.ErrConcurrentAttempt()
	}
	return nil
}

// Scan binds a merchant and amount to the attempt:
// AwaitingScan -> AwaitingCapture. It fails with UnknownMerchant if the id
// does not belong to a registered merchant identity and with InvalidAmount
// if the amount is not positive; either failure leaves the attempt in
// AwaitingScan.
func (a *Authorization) Scan(ctx context.Context, merchantID uuid.UUID, amount int64, currency string) error {
	if err := a.guard(); err != nil {
		return err
	}
	defer a.mu.Unlock()
	return a.scanLocked(ctx, merchantID, amount, currency)
}

func (a *Authorization) scanLocked(ctx context.Context, merchantID uuid.UUID, amount int64, currency string) error {
	if a.state != domain.AuthStateAwaitingScan {
		return apperror.ErrInvalidState(string(a.state))
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	merchant, err := a.identities.FindByID(ctx, merchantID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if merchant == nil || !merchant.IsMerchant() {
		return apperror.ErrUnknownMerchant()
	}

	// A request in a currency the payer's ledger does not hold can never
	// settle; reject it here so the attempt stays in AwaitingScan.
	snapshot, err := a.ledger.Snapshot(ctx, a.client.ID)
	if err != nil {
		return err
	}
	if currency != snapshot.Currency {
		return apperror.ErrCurrencyMismatch(snapshot.Currency, currency)
	}

	a.merchantID = merchant.ID
	a.merchantName = merchant.MerchantName
	a.amount = amount
	a.currency = currency
	a.state = domain.AuthStateAwaitingCapture

	a.log.Debug().
		Str("attempt_id", a.id.String()).
		Str("merchant_id", merchant.ID.String()).
		Int64("amount", amount).
		Msg("scan bound merchant to attempt")
	return nil
}

// ScanRequest consults the request registry and binds the pending request's
// merchant and amount to the attempt.
func (a *Authorization) ScanRequest(ctx context.Context, requestID uuid.UUID) error {
	if err := a.guard(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	req, err := a.requests.Get(ctx, requestID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if req == nil {
		return apperror.ErrNotFound("Payment request")
	}
	if !req.IsPending() {
		return apperror.ErrAlreadyResolved()
	}

	if err := a.scanLocked(ctx, req.MerchantID, req.Amount, req.Currency); err != nil {
		return err
	}
	a.requestID = req.ID
	return nil
}

// Capture consumes a capture outcome. Cancelled leaves the attempt in
// AwaitingCapture for another capture; Failed declines with CaptureFailed;
// a captured key advances through verification and settlement automatically
// and returns the terminal Outcome.
func (a *Authorization) Capture(ctx context.Context, result domain.CaptureResult) (*domain.Outcome, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	if a.state != domain.AuthStateAwaitingCapture {
		return nil, apperror.ErrInvalidState(string(a.state))
	}

	switch result.Status {
	case domain.CaptureStatusCancelled:
		// No key change; the payer may capture again.
		return &domain.Outcome{State: a.state}, nil
	case domain.CaptureStatusFailed:
		return a.declineLocked(ctx, domain.DeclineCaptureFailed, nil), nil
	case domain.CaptureStatusKey:
		return a.verifyAndSettleLocked(ctx, result.Key)
	default:
		return nil, apperror.Validation("unknown capture status")
	}
}

func (a *Authorization) verifyAndSettleLocked(ctx context.Context, key string) (*domain.Outcome, error) {
	a.state = domain.AuthStateVerifying
	if !a.client.KeyMatches(key) {
		// The decline reveals nothing about where the keys diverged.
		return a.declineLocked(ctx, domain.DeclineKeyMismatch, nil), nil
	}

	a.state = domain.AuthStateSettling
	txn, err := a.ledger.Debit(ctx, ports.DebitParams{
		ClientID:     a.client.ID,
		ClientName:   a.client.DisplayName,
		MerchantID:   a.merchantID,
		MerchantName: a.merchantName,
		Amount:       a.amount,
		Currency:     a.currency,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrInsufficientFunds().Code {
			// The attempt's artifact: a failed transaction that is not
			// part of the ledger history.
			failed := &domain.Transaction{
				ID:           uuid.New(),
				Amount:       a.amount,
				Currency:     a.currency,
				Status:       domain.TransactionStatusFailed,
				MerchantID:   a.merchantID,
				MerchantName: a.merchantName,
				ClientID:     a.client.ID,
				ClientName:   a.client.DisplayName,
				CreatedAt:    time.Now().UTC(),
			}
			return a.declineLocked(ctx, domain.DeclineInsufficientFunds, failed), nil
		}
		return nil, err
	}

	a.state = domain.AuthStateCompleted
	a.resolveRequestLocked(ctx, domain.RequestStatusApproved)

	a.log.Info().
		Str("attempt_id", a.id.String()).
		Str("tx_id", txn.ID.String()).
		Str("client_id", a.client.ID.String()).
		Str("merchant_id", a.merchantID.String()).
		Int64("amount", a.amount).
		Msg("authorization completed")

	return &domain.Outcome{
		State:       domain.AuthStateCompleted,
		Transaction: txn,
		Receipt: &domain.Receipt{
			TransactionID: txn.ID,
			MerchantName:  txn.MerchantName,
			ClientName:    txn.ClientName,
			Amount:        txn.Amount,
			Currency:      txn.Currency,
			IssuedAt:      txn.CreatedAt,
		},
	}, nil
}

func (a *Authorization) declineLocked(ctx context.Context, reason domain.DeclineReason, failed *domain.Transaction) *domain.Outcome {
	a.state = domain.AuthStateDeclined
	a.resolveRequestLocked(ctx, domain.RequestStatusRejected)

	a.log.Info().
		Str("attempt_id", a.id.String()).
		Str("client_id", a.client.ID.String()).
		Str("reason", string(reason)).
		Msg("authorization declined")

	return &domain.Outcome{
		State:       domain.AuthStateDeclined,
		Reason:      reason,
		Message:     reason.Message(),
		Transaction: failed,
	}
}

// resolveRequestLocked marks the bound payment request resolved. A missing
// binding or an already-resolved request is not an attempt failure.
func (a *Authorization) resolveRequestLocked(ctx context.Context, status domain.RequestStatus) {
	if a.requestID == uuid.Nil {
		return
	}
	if err := a.requests.Resolve(ctx, a.requestID, status); err != nil {
		a.log.Warn().Err(err).
			Str("request_id", a.requestID.String()).
			Msg("could not resolve payment request")
	}
}

// CancelPayment returns the attempt to AwaitingScan. Permitted at any point
// before verification begins; a cancelled attempt has mutated nothing.
func (a *Authorization) CancelPayment() error {
	if err := a.guard(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	switch a.state {
	case domain.AuthStateAwaitingScan, domain.AuthStateAwaitingCapture:
		a.requestID = uuid.Nil
		a.merchantID = uuid.Nil
		a.merchantName = ""
		a.amount = 0
		a.currency = ""
		a.state = domain.AuthStateAwaitingScan
		return nil
	default:
		return apperror.ErrInvalidState(string(a.state))
	}
}

// AuthorizationService implements ports.PaymentAuthorizer. It tracks one
// active attempt per client identity and owns the attempt lifecycle; the
// attempts themselves hold transient ids only, never entities.
type AuthorizationService struct {
	identities ports.IdentityStore
	ledger     ports.LedgerStore
	requests   ports.RequestRegistry
	log        zerolog.Logger

	mu       sync.Mutex
	attempts map[uuid.UUID]*Authorization
	active   map[uuid.UUID]uuid.UUID // client id -> active attempt id
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(
	identities ports.IdentityStore,
	ledger ports.LedgerStore,
	requests ports.RequestRegistry,
	log zerolog.Logger,
) *AuthorizationService {
	return &AuthorizationService{
		identities: identities,
		ledger:     ledger,
		requests:   requests,
		log:        log,
		attempts:   make(map[uuid.UUID]*Authorization),
		active:     make(map[uuid.UUID]uuid.UUID),
	}
}

// Begin starts a fresh attempt for the client without binding a request.
// Exposed for drivers that scan merchant and amount directly.
func (s *AuthorizationService) Begin(client domain.Identity) *Authorization {
	a := newAuthorization(client, s.identities, s.ledger, s.requests, s.log)
	s.mu.Lock()
	s.attempts[a.id] = a
	s.mu.Unlock()
	return a
}

// Scan starts an attempt for the client bound to a pending payment request.
// One attempt per client may be in flight; a second scan while the first is
// unfinished fails with ConcurrentAttempt. The new attempt reserves the
// client's slot before the registry lookup, so two racing scans cannot both
// pass the in-flight check while the lookup runs unlocked.
func (s *AuthorizationService) Scan(ctx context.Context, client *domain.Identity, requestID uuid.UUID) (*ports.AttemptInfo, error) {
	a := newAuthorization(*client, s.identities, s.ledger, s.requests, s.log)

	s.mu.Lock()
	if activeID, ok := s.active[client.ID]; ok {
		if current := s.attempts[activeID]; current != nil && !current.State().Terminal() {
			s.mu.Unlock()
			return nil, apperror.ErrConcurrentAttempt()
		}
		delete(s.attempts, activeID)
	}
	s.attempts[a.id] = a
	s.active[client.ID] = a.id
	s.mu.Unlock()

	if err := a.ScanRequest(ctx, requestID); err != nil {
		s.release(client.ID, a.id)
		return nil, err
	}
	return a.Info(), nil
}

// release drops an attempt and frees the client's slot if it still holds it.
func (s *AuthorizationService) release(clientID, attemptID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, attemptID)
	if s.active[clientID] == attemptID {
		delete(s.active, clientID)
	}
}

// Capture forwards a capture outcome to the client's attempt. A terminal
// outcome ends the attempt's tracking: the slot is freed and the attempt is
// dropped, so finished attempts do not accumulate for the process lifetime.
func (s *AuthorizationService) Capture(ctx context.Context, clientID, attemptID uuid.UUID, result domain.CaptureResult) (*domain.Outcome, error) {
	a, err := s.lookup(clientID, attemptID)
	if err != nil {
		return nil, err
	}

	outcome, err := a.Capture(ctx, result)
	if err != nil {
		return nil, err
	}

	if outcome.State.Terminal() {
		s.release(clientID, attemptID)
	}
	return outcome, nil
}

// CancelPayment cancels the client's attempt and ends its tracking; the next
// payment starts with a fresh scan.
func (s *AuthorizationService) CancelPayment(ctx context.Context, clientID, attemptID uuid.UUID) (*ports.AttemptInfo, error) {
	a, err := s.lookup(clientID, attemptID)
	if err != nil {
		return nil, err
	}
	if err := a.CancelPayment(); err != nil {
		return nil, err
	}

	s.release(clientID, attemptID)
	return a.Info(), nil
}

// Attempt returns the observable view of the client's attempt.
func (s *AuthorizationService) Attempt(ctx context.Context, clientID, attemptID uuid.UUID) (*ports.AttemptInfo, error) {
	a, err := s.lookup(clientID, attemptID)
	if err != nil {
		return nil, err
	}
	return a.Info(), nil
}

// lookup finds an attempt and checks the caller owns it. Foreign attempts
// are indistinguishable from missing ones.
func (s *AuthorizationService) lookup(clientID, attemptID uuid.UUID) (*Authorization, error) {
	s.mu.Lock()
	a := s.attempts[attemptID]
	s.mu.Unlock()

	if a == nil || a.client.ID != clientID {
		return nil, apperror.ErrNotFound("Authorization attempt")
	}
	return a, nil
}
