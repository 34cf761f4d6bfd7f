package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nft-auction-engine/config"
	"nft-auction-engine/internal/adapter/custody"
	httpHandler "nft-auction-engine/internal/adapter/http/handler"
	pgStorage "nft-auction-engine/internal/adapter/storage/postgres"
	redisStorage "nft-auction-engine/internal/adapter/storage/redis"
	"nft-auction-engine/internal/core/ports"
	"nft-auction-engine/internal/service"
	"nft-auction-engine/pkg/logger"
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
		Msg("Starting NFT Auction Settlement Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	auctionRepo := pgStorage.NewAuctionRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	bindingRepo := pgStorage.NewBindingRepo(pool)
	stateRepo := pgStorage.NewStateRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	priceFeed := redisStorage.NewPriceFeedStore(rdb)

	// Initialize custody collaborator clients
	assetClient := custody.NewAssetClient(cfg.Custody.AssetURL, cfg.Engine.EscrowAccount, cfg.Custody.Timeout)
	tokenClient := custody.NewTokenClient(cfg.Custody.TokenURL, cfg.Engine.EscrowAccount, cfg.Custody.Timeout)
	vaultClient := custody.NewVaultClient(cfg.Custody.VaultURL, cfg.Engine.EscrowAccount, cfg.Custody.Timeout)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.NewSystemClock()

	// Initialize business services
	authSvc := service.NewAuthService(accountRepo, encSvc, tokenSvc, cfg.Admin.APIKeyHash)
	valuationSvc := service.NewValuationService(bindingRepo, priceFeed, clock, cfg.Engine.MaxPriceAge, log)
	auctionSvc := service.NewAuctionService(
		auctionRepo,
		ledgerRepo,
		stateRepo,
		valuationSvc,
		assetClient,
		tokenClient,
		vaultClient,
		transactor,
		clock,
		log,
	)
	ledgerSvc := service.NewLedgerService(ledgerRepo, tokenClient, vaultClient, transactor, clock, log)
	adminSvc := service.NewAdminService(bindingRepo, stateRepo, transactor, clock, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AuctionSvc:     auctionSvc,
		LedgerSvc:      ledgerSvc,
		AdminSvc:       adminSvc,
		AccountRepo:    accountRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
