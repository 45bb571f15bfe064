package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akarpov/journal-backend/internal/adapter/postgres"
	entryrepo "github.com/akarpov/journal-backend/internal/adapter/postgres/entry"
	userrepo "github.com/akarpov/journal-backend/internal/adapter/postgres/user"
	authx "github.com/akarpov/journal-backend/internal/auth"
	"github.com/akarpov/journal-backend/internal/config"
	authsvc "github.com/akarpov/journal-backend/internal/service/auth"
	"github.com/akarpov/journal-backend/internal/service/journal"
	"github.com/akarpov/journal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs pending migrations, wires services and the HTTP
// router, and serves until SIGINT or SIGTERM triggers graceful shutdown.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	users := userrepo.New(pool)
	entries := entryrepo.New(pool)

	tokens, err := authx.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Algorithm, cfg.Auth.TokenTTL())
	if err != nil {
		return fmt.Errorf("init token manager: %w", err)
	}

	authService := authsvc.NewService(logger, users, tokens, cfg.Auth.PasswordHashCost)
	journalService := journal.NewService(logger, entries)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:        logger,
		CORS:          cfg.CORS,
		Version:       BuildVersion(),
		Auth:          authService,
		Journal:       journalService,
		DB:            pool,
		TokenResolver: authService,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", "context canceled"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
