package ports

import (
	"context"
	"time"

	"irispay/internal/core/domain"

	"github.com/google/uuid"
)

// KeyDeriver mints an opaque biometric key from raw seed material plus a
// decorrelating time component. The derivation is one-way; keys are compared
// as opaque strings and never reversed.
type KeyDeriver interface {
	Derive(seed []byte, at time.Time) string
}

// DeviceHandle is an acquired capture device. Read may block on a slow
// device interaction and must honor context cancellation.
type DeviceHandle interface {
	Read(ctx context.Context) ([]byte, error)
	Release()
}

// CaptureDevice grants access to a physical capture device. Acquire returns
// ErrDeviceUnavailable when no device is present; callers degrade to the
// simulated key path rather than aborting.
type CaptureDevice interface {
	Acquire(ctx context.Context) (DeviceHandle, error)
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles session token operations.
type TokenService interface {
	Generate(identityID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	IdentityID uuid.UUID
	Role       domain.Role
}

// HealthChecker reports liveness of one external dependency.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

// --- Service Ports (Business Logic) ---

// RegisterParams holds validated input for identity enrollment.
type RegisterParams struct {
	Username     string
	Password     string
	DisplayName  string
	Role         domain.Role
	MerchantName string
	SeedMaterial []byte // Optional; degraded mode synthesizes seed material
}

// RegisterResult holds the enrollment outcome. The biometric key is shown
// once at enrollment and never exposed again.
type RegisterResult struct {
	Identity     *domain.Identity
	BiometricKey string
	Degraded     bool // Key was minted without a capture device
}

// AuthService defines enrollment and login.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*RegisterResult, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// AttemptInfo is an observable view of one authorization attempt.
type AttemptInfo struct {
	ID           uuid.UUID        `json:"id"`
	State        domain.AuthState `json:"state"`
	RequestID    uuid.UUID        `json:"request_id"`
	MerchantID   uuid.UUID        `json:"merchant_id"`
	MerchantName string           `json:"merchant_name"`
	Amount       int64            `json:"amount"`
	Currency     string           `json:"currency"`
}

// PaymentAuthorizer drives authorization attempts on behalf of an
// authenticated client session. One attempt per client is active at a time;
// starting or transitioning concurrently fails with ConcurrentAttempt.
type PaymentAuthorizer interface {
	Scan(ctx context.Context, client *domain.Identity, requestID uuid.UUID) (*AttemptInfo, error)
	Capture(ctx context.Context, clientID, attemptID uuid.UUID, result domain.CaptureResult) (*domain.Outcome, error)
	CancelPayment(ctx context.Context, clientID, attemptID uuid.UUID) (*AttemptInfo, error)
	Attempt(ctx context.Context, clientID, attemptID uuid.UUID) (*AttemptInfo, error)
}
