package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pmendys/course-match/internal/config"
	"github.com/pmendys/course-match/internal/gateway"
	"github.com/pmendys/course-match/internal/handler"
	"github.com/pmendys/course-match/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	slog.SetDefault(logger)

	cfg, err := config.LoadWeb()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	accounts := gateway.New(gateway.Config{
		BaseURL:       cfg.AccountServiceURL,
		RecommendPath: cfg.RecommendPath,
		Timeout:       cfg.GatewayTimeout,
	})
	sessions := service.NewOrchestrator(accounts)
	signer := service.NewTokenSigner(cfg.SessionSecret)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, sessions, signer, cfg.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "account_service", cfg.AccountServiceURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
