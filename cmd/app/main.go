package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/IdleMiner_Go/docs"
	"github.com/osse101/IdleMiner_Go/internal/bootstrap"
	"github.com/osse101/IdleMiner_Go/internal/config"
)

// @title IdleMiner API
// @version 1.0
// @description Idle mining progression: stamina, single and continuous mining, offline catch-up and inventory.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn("Environment warning", "warning", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	select {
	case err := <-errCh:
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{DBPool: app.DBPool})
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: app.Server, DBPool: app.DBPool})
	return nil
}
