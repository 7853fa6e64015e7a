package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nwc-wallet-service/config"
	httpHandler "nwc-wallet-service/internal/adapter/http/handler"
	nostrAdapter "nwc-wallet-service/internal/adapter/nostr"
	pgStorage "nwc-wallet-service/internal/adapter/storage/postgres"
	redisStorage "nwc-wallet-service/internal/adapter/storage/redis"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/internal/ln"
	"nwc-wallet-service/internal/nwc"
	"nwc-wallet-service/internal/service"
	"nwc-wallet-service/pkg/logger"
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
		Msg("Starting NWC Wallet Service")

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
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	appRepo := pgStorage.NewAppRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)

	// Initialize Redis stores
	lookupCache := redisStorage.NewLookupCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Connect to the Nostr relay carrying the wallet-control protocol
	transport, err := nostrAdapter.NewRelayTransport(ctx, cfg.Nostr.RelayURL, log)
	if err != nil {
		log.Fatal().Err(err).Str("relay", cfg.Nostr.RelayURL).Msg("Failed to connect to relay")
	}
	log.Info().Str("relay", cfg.Nostr.RelayURL).Msg("Relay connected")

	// Lightning backend factory (Spark wallet daemon)
	sparkFactory := ln.NewSparkClient(cfg.Spark, &http.Client{Timeout: cfg.Spark.Timeout}, log)

	// Wallet-protocol subscription manager
	walletSvc := nwc.NewWalletService(transport, ledgerRepo, lookupCache, nwc.HandlerConfig{
		Network:         cfg.Spark.Network,
		PollInterval:    cfg.Payments.PollInterval,
		PollMaxAttempts: cfg.Payments.PollMaxAttempts,
	}, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	hashSvc := service.NewBcryptHashService()
	provider := service.NewBackendProvider(userRepo, sparkFactory)

	// Initialize business services
	authSvc := service.NewAuthService(userRepo, appRepo, hashSvc, tokenSvc, sparkFactory, provider, walletSvc, log)
	appSvc := service.NewAppService(appRepo, provider, walletSvc, cfg.Nostr.RelayURL, log)

	// Restore protocol listeners for every registered app
	if err := appSvc.ResubscribeAll(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to restore subscriptions")
	}
	log.Info().Int("active", walletSvc.ActiveSubscriptions()).Msg("Subscriptions restored")

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AppSvc:         appSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
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

	walletSvc.Shutdown()
	transport.Close()

	log.Info().Msg("Server exited")
}
