package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"irispay/config"
	httpHandler "irispay/internal/adapter/http/handler"
	memStorage "irispay/internal/adapter/storage/memory"
	redisStorage "irispay/internal/adapter/storage/redis"
	"irispay/internal/core/ports"
	"irispay/internal/service"
	"irispay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting irispay")

	ctx := context.Background()

	// Initialize in-memory stores. State lives for the process lifetime.
	identityStore := memStorage.NewIdentityStore()
	ledgerStore := memStorage.NewLedgerStore()
	requestRegistry := memStorage.NewRequestRegistry()

	// Audit trail of every ledger mutation
	events, unsubscribe := ledgerStore.Subscribe(64)
	defer unsubscribe()
	go func() {
		for event := range events {
			log.Info().
				Str("kind", string(event.Kind)).
				Str("client_id", event.ClientID.String()).
				Int64("amount", event.Amount).
				Int64("balance", event.Balance).
				Msg("ledger event")
		}
	}()

	// Initialize Redis-backed rate limiting when configured
	var rateLimitStore *redisStorage.RateLimitStore
	var healthCheckers []ports.HealthChecker
	if cfg.Redis.Enabled() {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthChecker(rdb))
	} else {
		log.Warn().Msg("Redis not configured, rate limiting disabled")
	}

	// Initialize core services. The server has no capture hardware; key
	// enrollment runs the degraded path with synthesized seed material
	// unless the request carries a sensor sample.
	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params())
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	deriver := service.NewSHA256KeyDeriver(cfg.Capture.Salt)
	device := service.NewNoCaptureDevice()

	// Initialize business services
	authSvc := service.NewIdentityService(
		identityStore,
		ledgerStore,
		device,
		deriver,
		hashSvc,
		tokenSvc,
		cfg.Wallet.OpeningBalance,
		cfg.Wallet.Currency,
		log,
	)
	authorizer := service.NewAuthorizationService(identityStore, ledgerStore, requestRegistry, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Authorizer:     authorizer,
		Identities:     identityStore,
		Ledger:         ledgerStore,
		Requests:       requestRegistry,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
