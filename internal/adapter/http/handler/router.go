package handler

import (
	"nft-auction-engine/internal/adapter/http/middleware"
	"nft-auction-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AuctionSvc     ports.AuctionService
	LedgerSvc      ports.LedgerService
	AdminSvc       ports.AdminService
	AccountRepo    ports.AccountRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
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

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/admin/login", authHandler.AdminLogin)
	}

	auctionHandler := NewAuctionHandler(deps.AuctionSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)
	v1.GET("/auctions", auctionHandler.List)
	v1.GET("/auctions/:id", auctionHandler.Get)
	v1.GET("/engine", adminHandler.GetState)

	// --- HMAC-authenticated routes (bidder/seller API) ---
	hmacAuth := middleware.HMACAuth(deps.AccountRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)

	auctions := v1.Group("/auctions", hmacAuth)
	{
		auctions.POST("", auctionHandler.Create)
		auctions.POST("/:id/bids", auctionHandler.PlaceBid)
		auctions.POST("/:id/end", auctionHandler.End)
	}

	ledger := v1.Group("/ledger", hmacAuth)
	{
		ledger.POST("/withdrawals", ledgerHandler.Withdraw)
		ledger.GET("/balances", ledgerHandler.GetBalances)
	}

	// --- JWT-authenticated routes (admin) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/bindings", adminHandler.RegisterBinding)
		admin.POST("/upgrade", adminHandler.InitializeV2)
		admin.PUT("/min-bid", adminHandler.SetMinBid)
	}

	return r
}
