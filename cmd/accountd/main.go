// Command accountd runs the stand-in account/recommendation service.
// It implements the HTTP contract the web client's gateway speaks, so
// the client can run end to end without the real external service.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pmendys/course-match/internal/accountsvc"
	"github.com/pmendys/course-match/internal/config"
	"github.com/pmendys/course-match/internal/repository/sqlite"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	slog.SetDefault(logger)

	cfg, err := config.LoadAccountd()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	// Seed the course catalog (idempotent).
	if err := accountsvc.SeedCatalog(context.Background(), db.Courses()); err != nil {
		slog.Error("failed to seed course catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("course catalog seeded")

	accounts := accountsvc.NewAccountService(db.Accounts(), cfg.BcryptCost)
	recommender := accountsvc.NewRecommender(db.Courses())
	limiter := accountsvc.NewTokenBucket(1, 10)

	mux := http.NewServeMux()
	accountsvc.NewAPI(accounts, recommender, db.Courses(), limiter).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("account service starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down account service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("account service stopped")
}
