package service

import (
	"context"
	"strings"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IdentityService implements ports.AuthService: enrollment mints a biometric
// key through a capture session and login exchanges credentials for a
// session token.
type IdentityService struct {
	identities ports.IdentityStore
	ledger     ports.LedgerStore
	device     ports.CaptureDevice
	deriver    ports.KeyDeriver
	hasher     ports.HashService
	tokens     ports.TokenService
	log        zerolog.Logger

	openingBalance int64
	currency       string
}

// NewIdentityService creates a new IdentityService. New client wallets are
// seeded with openingBalance in the given currency.
func NewIdentityService(
	identities ports.IdentityStore,
	ledger ports.LedgerStore,
	device ports.CaptureDevice,
	deriver ports.KeyDeriver,
	hasher ports.HashService,
	tokens ports.TokenService,
	openingBalance int64,
	currency string,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		identities:     identities,
		ledger:         ledger,
		device:         device,
		deriver:        deriver,
		hasher:         hasher,
		tokens:         tokens,
		log:            log,
		openingBalance: openingBalance,
		currency:       currency,
	}
}

// Register enrolls a new identity. A capture session mints the biometric
// key; without a device the session degrades and synthesizes the seed, so
// enrollment never fails on device absence. The key is returned once and
// never exposed again.
func (s *IdentityService) Register(ctx context.Context, params ports.RegisterParams) (*ports.RegisterResult, error) {
	if err := validateRegisterParams(params); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	session := NewCaptureSession(s.device, s.deriver)
	if err := session.Begin(ctx); err != nil {
		return nil, err
	}
	result, err := session.Submit(ctx, params.SeedMaterial)
	if err != nil {
		return nil, err
	}
	if result.Status != domain.CaptureStatusKey {
		return nil, apperror.ErrCaptureFailed(result.Reason)
	}

	identity := &domain.Identity{
		ID:           uuid.New(),
		Username:     params.Username,
		PasswordHash: passwordHash,
		DisplayName:  params.DisplayName,
		Role:         params.Role,
		MerchantName: params.MerchantName,
		BiometricKey: result.Key,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.identities.Register(ctx, identity); err != nil {
		return nil, err
	}

	if identity.Role == domain.RoleClient {
		if err := s.ledger.Open(ctx, identity.ID, s.currency); err != nil {
			return nil, apperror.InternalError(err)
		}
		if s.openingBalance > 0 {
			if _, err := s.ledger.Credit(ctx, identity.ID, s.openingBalance); err != nil {
				return nil, apperror.InternalError(err)
			}
		}
	}

	s.log.Info().
		Str("identity_id", identity.ID.String()).
		Str("role", string(identity.Role)).
		Bool("degraded", session.Degraded()).
		Msg("identity enrolled")

	return &ports.RegisterResult{
		Identity:     identity,
		BiometricKey: result.Key,
		Degraded:     session.Degraded(),
	}, nil
}

// Login verifies credentials and returns a signed session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	identity, err := s.identities.FindByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	if identity == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hasher.Verify(password, identity.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	return s.tokens.Generate(identity.ID, identity.Role)
}

func validateRegisterParams(params ports.RegisterParams) error {
	if strings.TrimSpace(params.Username) == "" {
		return apperror.Validation("username is required")
	}
	if params.Password == "" {
		return apperror.Validation("password is required")
	}
	if strings.TrimSpace(params.DisplayName) == "" {
		return apperror.Validation("display name is required")
	}
	switch params.Role {
	case domain.RoleClient:
		if params.MerchantName != "" {
			return apperror.Validation("merchant name is only valid for merchants")
		}
	case domain.RoleMerchant:
		if strings.TrimSpace(params.MerchantName) == "" {
			return apperror.Validation("merchant name is required")
		}
	default:
		return apperror.Validation("role must be CLIENT or MERCHANT")
	}
	return nil
}
