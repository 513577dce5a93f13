package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hammering one attempt with concurrent capture submissions must settle at
// most once: a single COMPLETED outcome, everything else rejected as a
// concurrent or out-of-state transition, and exactly one debit on the
// ledger.
func TestIntegrationConcurrentCaptures(t *testing.T) {
	app := newTestApp(t)

	clientToken, enrollment := app.registerAndLogin(t, "dave", "CLIENT", "", "dave-iris")
	clientKey, _ := enrollment["biometric_key"].(string)
	merchantToken, _ := app.registerAndLogin(t, "bar", "MERCHANT", "Bar", "bar-iris")

	code, _ := app.post(t, "/api/v1/wallets/fund", clientToken, map[string]interface{}{"amount": 100})
	require.Equal(t, http.StatusOK, code)

	code, body := app.post(t, "/api/v1/requests", merchantToken, map[string]interface{}{
		"amount": 40, "currency": "EUR",
	})
	require.Equal(t, http.StatusCreated, code)
	requestID, _ := data(t, body)["id"].(string)

	code, body = app.post(t, "/api/v1/payments/scan", clientToken, map[string]string{"request_id": requestID})
	require.Equal(t, http.StatusCreated, code)
	attemptID, _ := data(t, body)["id"].(string)

	const workers = 8
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, body := app.post(t, fmt.Sprintf("/api/v1/payments/%s/capture", attemptID), clientToken, map[string]string{
				"status": "KEY",
				"key":    clientKey,
			})
			if code == http.StatusOK {
				if state, ok := data(t, body)["state"].(string); ok {
					results[i] = state
				}
				return
			}
			results[i] = fmt.Sprintf("http %d", code)
		}(i)
	}
	wg.Wait()

	var completed int
	for _, state := range results {
		if state == "COMPLETED" {
			completed++
		}
	}
	assert.Equal(t, 1, completed, "states: %v", results)

	code, body = app.get(t, "/api/v1/wallets/balance", clientToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(60), data(t, body)["balance"])

	code, body = app.get(t, "/api/v1/transactions", clientToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), data(t, body)["total"])
}

// Concurrent funding must serialize on the ledger so no credit is lost.
func TestIntegrationConcurrentFunding(t *testing.T) {
	app := newTestApp(t)

	clientToken, _ := app.registerAndLogin(t, "erin", "CLIENT", "", "erin-iris")

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := app.post(t, "/api/v1/wallets/fund", clientToken, map[string]interface{}{"amount": 7})
			assert.Equal(t, http.StatusOK, code)
		}()
	}
	wg.Wait()

	code, body := app.get(t, "/api/v1/wallets/balance", clientToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(7*workers), data(t, body)["balance"])
}
