package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/moneybox/internal/config"
	"github.com/benx421/moneybox/internal/db"
	"github.com/benx421/moneybox/internal/handlers"
	"github.com/benx421/moneybox/internal/notification"
	"github.com/benx421/moneybox/internal/repository"
	"github.com/benx421/moneybox/internal/service"
	"github.com/joho/godotenv"
)

// stores are the storage-backed collaborators selected by STORAGE_BACKEND
type stores struct {
	accounts    repository.AccountRepository
	idempotency repository.IdempotencyRepository
	health      service.HealthChecker
	close       func() error
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment", "error", envErr)
	}

	logger.Info("starting moneybox api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"storage", cfg.Storage.Backend,
		"notifier", cfg.Notification.Backend,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("moneybox api stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	if cfg.App.SeedDemoAccounts {
		if err := repository.SeedDemoAccounts(ctx, st.accounts, logger); err != nil {
			return err
		}
	}

	notifier, err := notification.New(&cfg.Notification, logger)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error("failed to close notifier", "error", err)
		}
	}()

	router, err := handlers.NewRouter(handlers.Dependencies{
		Accounts:      st.accounts,
		Notifier:      notifier,
		Idempotency:   st.idempotency,
		HealthChecker: st.health,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	go repository.PruneIdempotencyKeys(ctx, st.idempotency, cfg.App.IdempotencyTTL, cfg.App.IdempotencyPruneInterval, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		database, err := db.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &stores{
			accounts:    repository.NewAccountRepository(database),
			idempotency: repository.NewIdempotencyRepository(database),
			health:      database,
			close:       database.Close,
		}, nil
	default:
		accounts := repository.NewMemoryAccountRepository()
		return &stores{
			accounts:    accounts,
			idempotency: repository.NewMemoryIdempotencyRepository(),
			health:      accounts,
			close:       func() error { return nil },
		}, nil
	}
}
