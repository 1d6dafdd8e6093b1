// Package main is the entry point for the travel-blog API server.
//
// main stays minimal:
// 1. Read configuration (.env file and environment)
// 2. Create dependencies (logger, store, password service)
// 3. Bootstrap the store and start the server
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakif/travel-blog/internal/auth"
	"github.com/sakif/travel-blog/internal/config"
	"github.com/sakif/travel-blog/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// A malformed connection string is fatal. An unreachable database is
	// not; Bootstrap logs it and the server starts anyway.
	store, err := server.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.PasswordMode == auth.ModePlaintext {
		logger.Warn("PASSWORD_MODE=plaintext: new passwords are stored unhashed")
	}

	srv := server.New(server.Config{
		Port:       cfg.Port,
		CORSOrigin: cfg.CORSOrigin,
	}, store, auth.NewPasswordService(cfg.PasswordMode), logger)

	bootCtx, cancel := context.WithTimeout(ctx, cfg.Store.MongoTimeout)
	srv.Bootstrap(bootCtx)
	cancel()

	// Start blocks until SIGINT/SIGTERM and closes the store on the way out.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
