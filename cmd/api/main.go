package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	domainmsg "github.com/logifin/wallet-ledger/internal/domain/port/messaging"
	"github.com/logifin/wallet-ledger/internal/domain/usecase/history"
	"github.com/logifin/wallet-ledger/internal/domain/usecase/wallet"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/auth"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/messaging"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/metrics"
	timeprovider "github.com/logifin/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/logifin/wallet-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Wallet ledger stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeprovider.NewRealTimeProvider()
	promMetrics := metrics.NewPrometheus()

	dbManager := database.NewManager(database.NewConfigFromAppConfig(cfg), appLogger, tp, promMetrics)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	publisher, err := newPublisher(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = publisher.Close() }()

	ledgerConfig, err := newLedgerConfig(cfg)
	if err != nil {
		return err
	}

	uow := dbManager.CreateUnitOfWork()
	walletService := wallet.NewService(uow, publisher, promMetrics, tp, appLogger.With(map[string]any{"component": "wallet"}), ledgerConfig)
	historyService := history.NewService(uow, appLogger.With(map[string]any{"component": "history"}))

	var verifier middleware.TokenVerifier
	if cfg.Auth.Enabled {
		verifier = auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
	} else {
		appLogger.Warn("Authentication disabled, every caller acts as administrator", nil)
	}

	router := routes.NewRouter(routes.Options{
		Logger:             appLogger,
		WalletHandler:      handler.NewWalletHandler(walletService, appLogger),
		TransactionHandler: handler.NewTransactionHandler(historyService, appLogger),
		Verifier:           verifier,
		HTTPObserver:       promMetrics,
		MetricsHandler:     promMetrics.Handler(),
		Health:             dbManager.Ping,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	if err := walletService.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Wallet operations did not drain", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func newLedgerConfig(cfg *config.Config) (wallet.Config, error) {
	ledgerConfig := wallet.DefaultConfig()

	initial, err := entity.ParseMoney(cfg.Ledger.InitialBalance)
	if err != nil {
		return ledgerConfig, fmt.Errorf("ledger.initialBalance: %w", err)
	}
	ledgerConfig.InitialBalance = initial
	ledgerConfig.Policy.EnforceInvestedPrincipal = cfg.Ledger.EnforceInvestedPrincipal
	ledgerConfig.Retry.MaxRetries = cfg.Transaction.MaxRetries
	if cfg.Transaction.RetryDelayMs > 0 {
		ledgerConfig.Retry.RetryInterval = time.Duration(cfg.Transaction.RetryDelayMs) * time.Millisecond
	}
	if cfg.Transaction.QueueSize > 0 {
		ledgerConfig.QueueSize = cfg.Transaction.QueueSize
	}
	return ledgerConfig, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (domainmsg.EventPublisher, error) {
	if !cfg.Redis.Enabled {
		return messaging.NoopPublisher{}, nil
	}

	client, err := messaging.ConnectRedis(ctx, messaging.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Channel:  cfg.Redis.Channel,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	appLogger.Info("Publishing ledger events to Redis", map[string]any{
		"addr":    cfg.Redis.Addr,
		"channel": cfg.Redis.Channel,
	})
	return messaging.NewRedisPublisher(client, cfg.Redis.Channel, appLogger), nil
}
