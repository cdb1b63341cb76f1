package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/stormscope/warning-overlay/internal/adapter/archive"
	"github.com/stormscope/warning-overlay/internal/adapter/httpapi"
	"github.com/stormscope/warning-overlay/internal/config"
	"github.com/stormscope/warning-overlay/internal/observability"
	"github.com/stormscope/warning-overlay/internal/pipeline"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := archive.NewClient(cfg, logger, metrics)
	p := pipeline.New(fetcher, logger, metrics, cfg.OverlayTitle, cfg.OverlayRefresh)

	srv := httpapi.NewServer(cfg.HTTPAddr, p, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
