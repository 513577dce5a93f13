package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "irispay/internal/adapter/http/handler"
	memStorage "irispay/internal/adapter/storage/memory"
	redisStorage "irispay/internal/adapter/storage/redis"
	"irispay/internal/core/ports"
	"irispay/internal/service"
	"irispay/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp runs the full stack: real HTTP layer, middleware, handlers,
// services, in-memory stores, and rate limiting on miniredis. The capture
// device is a fixed-seed simulator so every registration succeeds without
// hardware.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	identityStore := memStorage.NewIdentityStore()
	ledgerStore := memStorage.NewLedgerStore()
	requestRegistry := memStorage.NewRequestRegistry()

	hashSvc := service.NewArgon2HashService(service.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	tokenSvc := service.NewJWTTokenService("integration-test-secret", 24*time.Hour, "irispay-test")
	deriver := service.NewSHA256KeyDeriver("integration-salt")
	device := service.NewStaticCaptureDevice([]byte("integration-iris"))

	log := logger.New("error", false)

	authSvc := service.NewIdentityService(
		identityStore, ledgerStore, device, deriver, hashSvc, tokenSvc, 0, "EUR", log)
	authorizer := service.NewAuthorizationService(identityStore, ledgerStore, requestRegistry, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Authorizer:     authorizer,
		Identities:     identityStore,
		Ledger:         ledgerStore,
		Requests:       requestRegistry,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthChecker(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		mr.Close()
	})

	return &testApp{server: server, redis: mr}
}

// post sends a JSON body, optionally authenticated, and decodes the reply.
func (a *testApp) post(t *testing.T, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (a *testApp) get(t *testing.T, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "no data object in %v", body)
	return d
}

// registerAndLogin enrolls an identity and returns its token plus the
// enrollment data (which carries the one-time biometric key).
func (a *testApp) registerAndLogin(t *testing.T, username, role, merchantName, seed string) (string, map[string]interface{}) {
	t.Helper()
	regBody := map[string]interface{}{
		"username":     username,
		"password":     "StrongPass123!",
		"display_name": "Name of " + username,
		"role":         role,
	}
	if merchantName != "" {
		regBody["merchant_name"] = merchantName
	}
	if seed != "" {
		regBody["seed_material"] = seed
	}
	code, body := a.post(t, "/api/v1/auth/register", "", regBody)
	require.Equal(t, http.StatusCreated, code, "register failed: %v", body)
	enrollment := data(t, body)

	code, body = a.post(t, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "StrongPass123!",
	})
	require.Equal(t, http.StatusOK, code, "login failed: %v", body)
	token, _ := data(t, body)["token"].(string)
	require.NotEmpty(t, token)

	return token, enrollment
}

func TestIntegrationHealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

// Full happy path: enroll both parties, fund the wallet, create a request,
// scan, capture the correct key, and check balances and histories.
func TestIntegrationFullPaymentFlow(t *testing.T) {
	app := newTestApp(t)

	clientToken, enrollment := app.registerAndLogin(t, "alice", "CLIENT", "", "alice-iris")
	clientKey, _ := enrollment["biometric_key"].(string)
	require.NotEmpty(t, clientKey)

	merchantToken, _ := app.registerAndLogin(t, "coffeeshop", "MERCHANT", "Coffee Shop", "shop-iris")

	// Fund the wallet
	code, body := app.post(t, "/api/v1/wallets/fund", clientToken, map[string]interface{}{"amount": 100})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(100), data(t, body)["balance"])

	// Merchant creates a payment request
	code, body = app.post(t, "/api/v1/requests", merchantToken, map[string]interface{}{
		"amount":   45,
		"currency": "EUR",
	})
	require.Equal(t, http.StatusCreated, code)
	requestID, _ := data(t, body)["id"].(string)
	require.NotEmpty(t, requestID)

	// Client scans the request
	code, body = app.post(t, "/api/v1/payments/scan", clientToken, map[string]string{"request_id": requestID})
	require.Equal(t, http.StatusCreated, code)
	scan := data(t, body)
	attemptID, _ := scan["id"].(string)
	assert.Equal(t, "AWAITING_CAPTURE", scan["state"])
	assert.Equal(t, "Coffee Shop", scan["merchant_name"])

	// Client submits the captured key
	code, body = app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
		"status": "KEY",
		"key":    clientKey,
	})
	require.Equal(t, http.StatusOK, code)
	outcome := data(t, body)
	assert.Equal(t, "COMPLETED", outcome["state"])
	receipt, _ := outcome["receipt"].(map[string]interface{})
	require.NotNil(t, receipt)
	assert.Equal(t, "Coffee Shop", receipt["merchant_name"])
	assert.Equal(t, float64(45), receipt["amount"])

	// Balance decreased
	code, body = app.get(t, "/api/v1/wallets/balance", clientToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(55), data(t, body)["balance"])

	// Request resolved approved
	code, body = app.get(t, "/api/v1/requests", merchantToken)
	require.Equal(t, http.StatusOK, code)
	items, _ := body["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "APPROVED", items[0].(map[string]interface{})["status"])

	// The merchant can also fetch the request directly.
	code, body = app.get(t, "/api/v1/requests/"+requestID, merchantToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "APPROVED", data(t, body)["status"])

	// Both sides see the settled transaction
	for _, token := range []string{clientToken, merchantToken} {
		code, body = app.get(t, "/api/v1/transactions", token)
		require.Equal(t, http.StatusOK, code)
		list := data(t, body)
		assert.Equal(t, float64(1), list["total"])
	}
}

func TestIntegrationDeclineFlows(t *testing.T) {
	app := newTestApp(t)

	clientToken, enrollment := app.registerAndLogin(t, "bob", "CLIENT", "", "bob-iris")
	clientKey, _ := enrollment["biometric_key"].(string)
	merchantToken, _ := app.registerAndLogin(t, "kiosk", "MERCHANT", "Kiosk", "kiosk-iris")

	newAttempt := func(t *testing.T, amount int64) string {
		code, body := app.post(t, "/api/v1/requests", merchantToken, map[string]interface{}{
			"amount": amount, "currency": "EUR",
		})
		require.Equal(t, http.StatusCreated, code)
		requestID, _ := data(t, body)["id"].(string)

		code, body = app.post(t, "/api/v1/payments/scan", clientToken, map[string]string{"request_id": requestID})
		require.Equal(t, http.StatusCreated, code)
		attemptID, _ := data(t, body)["id"].(string)
		return attemptID
	}

	t.Run("key mismatch declines", func(t *testing.T) {
		attemptID := newAttempt(t, 10)
		code, body := app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
			"status": "KEY",
			"key":    "not-the-right-key",
		})
		require.Equal(t, http.StatusOK, code)
		outcome := data(t, body)
		assert.Equal(t, "DECLINED", outcome["state"])
		assert.Equal(t, "KEY_MISMATCH", outcome["reason"])
	})

	t.Run("insufficient funds declines with failed transaction", func(t *testing.T) {
		attemptID := newAttempt(t, 10_000)
		code, body := app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
			"status": "KEY",
			"key":    clientKey,
		})
		require.Equal(t, http.StatusOK, code)
		outcome := data(t, body)
		assert.Equal(t, "DECLINED", outcome["state"])
		assert.Equal(t, "INSUFFICIENT_FUNDS", outcome["reason"])
		txn, _ := outcome["transaction"].(map[string]interface{})
		require.NotNil(t, txn)
		assert.Equal(t, "FAILED", txn["status"])

		// Failed attempts leave no history behind.
		code, body = app.get(t, "/api/v1/transactions", clientToken)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(0), data(t, body)["total"])
	})

	t.Run("cancelled capture can retry", func(t *testing.T) {
		attemptID := newAttempt(t, 1)
		code, body := app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
			"status": "CANCELLED",
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "AWAITING_CAPTURE", data(t, body)["state"])

		// Fund just enough, then retry on the same attempt.
		code, _ = app.post(t, "/api/v1/wallets/fund", clientToken, map[string]interface{}{"amount": 1})
		require.Equal(t, http.StatusOK, code)

		code, body = app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
			"status": "KEY",
			"key":    clientKey,
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "COMPLETED", data(t, body)["state"])
	})
}

func TestIntegrationRoleEnforcement(t *testing.T) {
	app := newTestApp(t)

	clientToken, _ := app.registerAndLogin(t, "carol", "CLIENT", "", "carol-iris")
	merchantToken, _ := app.registerAndLogin(t, "stand", "MERCHANT", "Stand", "stand-iris")

	// Clients cannot create payment requests.
	code, body := app.post(t, "/api/v1/requests", clientToken, map[string]interface{}{
		"amount": 10, "currency": "EUR",
	})
	assert.Equal(t, http.StatusForbidden, code, "%v", body)

	// Merchants cannot scan or fund.
	code, _ = app.post(t, "/api/v1/wallets/fund", merchantToken, map[string]interface{}{"amount": 10})
	assert.Equal(t, http.StatusForbidden, code)

	// Anonymous requests are rejected outright.
	code, _ = app.get(t, "/api/v1/wallets/balance", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestIntegrationRegisterRateLimit(t *testing.T) {
	app := newTestApp(t)

	// The register group allows 5 per hour per IP.
	var lastCode int
	for i := 0; i < 6; i++ {
		lastCode, _ = app.post(t, "/api/v1/auth/register", "", map[string]interface{}{
			"username":     fmt.Sprintf("user%d", i),
			"password":     "StrongPass123!",
			"display_name": "User",
			"role":         "CLIENT",
		})
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
