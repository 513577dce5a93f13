package service

import (
	"context"
	"testing"
	"time"

	"irispay/internal/adapter/storage/memory"
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T, device ports.CaptureDevice) (*IdentityService, *memory.IdentityStore, *memory.LedgerStore) {
	t.Helper()
	identities := memory.NewIdentityStore()
	ledger := memory.NewLedgerStore()
	svc := NewIdentityService(
		identities,
		ledger,
		device,
		NewSHA256KeyDeriver("test-salt"),
		NewArgon2HashService(DefaultArgon2Params()),
		NewJWTTokenService("test-secret", time.Hour, "irispay-test"),
		500,
		"EUR",
		zerolog.Nop(),
	)
	return svc, identities, ledger
}

func clientParams(username string) ports.RegisterParams {
	return ports.RegisterParams{
		Username:     username,
		Password:     "s3cret-password",
		DisplayName:  "Alice",
		Role:         domain.RoleClient,
		SeedMaterial: []byte(username + "-iris"),
	}
}

func TestRegisterClient(t *testing.T) {
	ctx := context.Background()
	svc, identities, ledger := newIdentityService(t, NewStaticCaptureDevice([]byte("iris")))

	result, err := svc.Register(ctx, clientParams("alice"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.BiometricKey)
	assert.False(t, result.Degraded)
	assert.Equal(t, domain.RoleClient, result.Identity.Role)
	assert.NotEqual(t, "s3cret-password", result.Identity.PasswordHash)

	// Enrolled identity is findable by its key.
	found, err := identities.FindByKey(ctx, result.BiometricKey)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, result.Identity.ID, found.ID)

	// Wallet opened with the opening balance, no transaction history.
	balance, err := ledger.Balance(ctx, result.Identity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	snapshot, err := ledger.Snapshot(ctx, result.Identity.ID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.History)
}

func TestRegisterMerchant(t *testing.T) {
	ctx := context.Background()
	svc, _, ledger := newIdentityService(t, NewStaticCaptureDevice([]byte("iris")))

	result, err := svc.Register(ctx, ports.RegisterParams{
		Username:     "coffeeshop",
		Password:     "s3cret-password",
		DisplayName:  "Coffee Shop Ltd",
		Role:         domain.RoleMerchant,
		MerchantName: "Coffee Shop",
		SeedMaterial: []byte("merchant-iris"),
	})
	require.NoError(t, err)
	assert.True(t, result.Identity.IsMerchant())

	// Merchants have no wallet.
	_, err = ledger.Balance(ctx, result.Identity.ID)
	assertAppCode(t, err, "PAY_006")
}

// Without a capture device enrollment still succeeds with a synthesized key.
func TestRegisterDegraded(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newIdentityService(t, NewNoCaptureDevice())

	result, err := svc.Register(ctx, ports.RegisterParams{
		Username:    "alice",
		Password:    "s3cret-password",
		DisplayName: "Alice",
		Role:        domain.RoleClient,
	})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.BiometricKey)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newIdentityService(t, NewStaticCaptureDevice([]byte("iris")))

	tests := []struct {
		name   string
		mutate func(*ports.RegisterParams)
		code   string
	}{
		{"missing username", func(p *ports.RegisterParams) { p.Username = " " }, "VAL_001"},
		{"missing password", func(p *ports.RegisterParams) { p.Password = "" }, "VAL_001"},
		{"missing display name", func(p *ports.RegisterParams) { p.DisplayName = "" }, "VAL_001"},
		{"unknown role", func(p *ports.RegisterParams) { p.Role = "ADMIN" }, "VAL_001"},
		{"merchant name on client", func(p *ports.RegisterParams) { p.MerchantName = "Shop" }, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := clientParams("alice")
			tt.mutate(&params)
			_, err := svc.Register(ctx, params)
			assertAppCode(t, err, tt.code)
		})
	}

	t.Run("merchant without merchant name", func(t *testing.T) {
		params := clientParams("shop")
		params.Role = domain.RoleMerchant
		_, err := svc.Register(ctx, params)
		assertAppCode(t, err, "VAL_001")
	})
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newIdentityService(t, NewStaticCaptureDevice([]byte("iris")))

	_, err := svc.Register(ctx, clientParams("alice"))
	require.NoError(t, err)

	t.Run("username", func(t *testing.T) {
		params := clientParams("alice")
		params.SeedMaterial = []byte("different-iris")
		_, err := svc.Register(ctx, params)
		assertAppCode(t, err, "IDN_003")
	})

	t.Run("biometric key", func(t *testing.T) {
		// Same seed can still derive distinct keys because derivation mixes
		// in the enrollment instant; force the collision through the store.
		identities := memory.NewIdentityStore()
		first := &domain.Identity{Username: "a", BiometricKey: "same-key"}
		second := &domain.Identity{Username: "b", BiometricKey: "same-key"}
		require.NoError(t, identities.Register(ctx, first))
		assertAppCode(t, identities.Register(ctx, second), "IDN_001")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newIdentityService(t, NewStaticCaptureDevice([]byte("iris")))

	result, err := svc.Register(ctx, clientParams("alice"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, expiresAt, err := svc.Login(ctx, "alice", "s3cret-password")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, expiresAt.After(time.Now()))

		claims, err := svc.tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, result.Identity.ID, claims.IdentityID)
		assert.Equal(t, domain.RoleClient, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice", "wrong")
		assertAppCode(t, err, "AUTH_001")
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody", "s3cret-password")
		assertAppCode(t, err, "AUTH_001")
	})
}
