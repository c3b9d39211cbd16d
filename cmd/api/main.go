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

	"github.com/fastprodman/marketplace/internal/api"
	"github.com/fastprodman/marketplace/internal/infra/logging"
	"github.com/fastprodman/marketplace/internal/infra/pgutils"
	"github.com/fastprodman/marketplace/internal/services/accounts"
	"github.com/fastprodman/marketplace/internal/services/marketplace"
	"github.com/fastprodman/marketplace/internal/services/orders"
	"github.com/fastprodman/marketplace/pkg/envconf"
	"github.com/fastprodman/marketplace/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel, cfg.Debug)

	shutdown := shutdownqueue.New()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdown.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdown.Add("postgres", func(context.Context) error {
		slog.Info("Close database pool")
		return db.Close()
	})

	svc := api.Services{
		Marketplace: marketplace.New(db, cfg.Marketplace),
		Accounts:    accounts.New(db),
		Orders:      orders.New(db),
	}

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, svc, api.RouterOptions{Debug: cfg.Debug})

	// Registered after the pool so it stops first.
	shutdown.Add("http", func(c context.Context) error {
		slog.Info("Shut down server")
		return srv.Shutdown(c)
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started",
		"port", cfg.Port,
		"lock_timeout", cfg.Marketplace.LockTimeout,
		"allow_negative_balance", cfg.Marketplace.AllowNegativeBalance,
	)

	select {
	case <-ctx.Done():
		// graceful path; deferred shutdown runs
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
