package handler

import (
	"irispay/internal/adapter/http/middleware"
	redisStore "irispay/internal/adapter/storage/redis"
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Authorizer     ports.PaymentAuthorizer
	Identities     ports.IdentityStore
	Ledger         ports.LedgerStore
	Requests       ports.RequestRegistry
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Identities, deps.Logger)
	clientOnly := middleware.RequireRole(domain.RoleClient)
	merchantOnly := middleware.RequireRole(domain.RoleMerchant)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Merchant routes ---
	requestHandler := NewRequestHandler(deps.Requests)
	requests := v1.Group("/requests", jwtAuth, merchantOnly)
	{
		requests.POST("", rl("requests"), requestHandler.Create)
		requests.GET("", rl("requests"), requestHandler.List)
		requests.GET("/:id", rl("requests"), requestHandler.Get)
	}

	// --- Client routes ---
	paymentHandler := NewPaymentHandler(deps.Authorizer)
	payments := v1.Group("/payments", jwtAuth, clientOnly)
	{
		payments.POST("/scan", rl("payments"), paymentHandler.Scan)
		payments.POST("/:id/capture", rl("payments"), paymentHandler.Capture)
		payments.POST("/:id/cancel", rl("payments"), paymentHandler.Cancel)
		payments.GET("/:id", rl("payments"), paymentHandler.Get)
	}

	walletHandler := NewWalletHandler(deps.Ledger)
	wallets := v1.Group("/wallets", jwtAuth, clientOnly)
	{
		wallets.POST("/fund", rl("wallets"), walletHandler.Fund)
		wallets.GET("/balance", rl("wallets"), walletHandler.Balance)
	}

	// Transaction history is visible to both roles.
	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", rl("wallets"), walletHandler.Transactions)
	}

	return r
}
