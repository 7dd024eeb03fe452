package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/config"
	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/handler"
	"github.com/Bolitupac/mobilebankapp/internal/ledger"
	"github.com/Bolitupac/mobilebankapp/internal/logging"
	"github.com/Bolitupac/mobilebankapp/internal/middleware"
	"github.com/Bolitupac/mobilebankapp/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("mobilebank-api", cfg.LogLevel, cfg.AppEnv)

	accounts, db, err := buildStore(cfg)
	if err != nil {
		slog.Error("failed to set up account store", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	svc := ledger.NewService(accounts)
	txlog := ledger.NewLog()

	authHandler := handler.NewAuthHandler(svc, cfg.JWTSecret, time.Duration(cfg.JWTExpiryM)*time.Minute)
	accountHandler := handler.NewAccountHandler(svc)
	opsHandler := handler.NewOperationsHandler(svc, txlog)
	txHandler := handler.NewTransactionsHandler(txlog)
	healthHandler := handler.NewHealthHandler(db)

	requireAuth := middleware.Auth(cfg.JWTSecret, svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)

	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("GET /api/v1/account", requireAuth(http.HandlerFunc(accountHandler.Get)))
	mux.Handle("GET /api/v1/account/balance", requireAuth(http.HandlerFunc(accountHandler.Balance)))
	mux.Handle("PATCH /api/v1/account/profile", requireAuth(http.HandlerFunc(accountHandler.UpdateProfile)))
	mux.Handle("PATCH /api/v1/account/password", requireAuth(http.HandlerFunc(accountHandler.ChangePassword)))

	mux.Handle("POST /api/v1/account/deposit", requireAuth(http.HandlerFunc(opsHandler.Deposit)))
	mux.Handle("POST /api/v1/account/transfer", requireAuth(http.HandlerFunc(opsHandler.Transfer)))
	mux.Handle("POST /api/v1/account/airtime", requireAuth(http.HandlerFunc(opsHandler.BuyAirtime)))

	mux.Handle("GET /api/v1/transactions", requireAuth(http.HandlerFunc(txHandler.List)))
	mux.Handle("DELETE /api/v1/transactions", requireAuth(http.HandlerFunc(txHandler.Clear)))

	root := middleware.Tracing(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// buildStore returns the Postgres store when DATABASE_URL is set,
// otherwise the in-memory store seeded with demo accounts. The second
// return value is nil in in-memory mode.
func buildStore(cfg *config.Config) (store.AccountStore, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("no DATABASE_URL set, using in-memory store with demo accounts")
		return seedDemoStore(), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.NewPostgresDB(ctx, cfg.DatabaseURL, store.PoolConfig{
		MaxOpenConns:     cfg.DBMaxOpenConns,
		MaxIdleConns:     cfg.DBMaxIdleConns,
		ConnMaxLifetimeS: cfg.DBConnMaxLifetimeS,
		ConnMaxIdleTimeS: cfg.DBConnMaxIdleTimeS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("buildStore: %w", err)
	}

	slog.Info("connected to postgres account store")
	return store.NewPostgresStore(db), db, nil
}

func seedDemoStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.Seed(domain.Account{
		AccountNumber: "0123456789",
		Name:          "Demo User",
		Email:         "demo@mobilebank.app",
		Password:      "1234",
		Balance:       decimal.NewFromInt(1000),
	})
	s.Seed(domain.Account{
		AccountNumber: "0000000001",
		Name:          "Second User",
		Email:         "second@mobilebank.app",
		Password:      "4321",
		Balance:       decimal.NewFromInt(500),
	})
	return s
}
