package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/travel-blog/internal/config"
	"github.com/sakif/travel-blog/internal/repository"
	"github.com/sakif/travel-blog/internal/repository/mongodb"
	"github.com/sakif/travel-blog/internal/repository/sqlite"
	"github.com/sakif/travel-blog/internal/service"
)

// initializer is implemented by stores that create their own schema
// (MongoDB collections, validators and indexes).
type initializer interface {
	Init(ctx context.Context) error
}

// OpenStore opens the store cfg selects. For MongoDB only the connection
// string is checked here; reachability is Prepare's job.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		store, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.MongoTimeout,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("using MongoDB store", slog.String("database", store.DatabaseName()))
		return store, nil

	case config.DriverSQLite:
		if cfg.SQLitePath != ":memory:" {
			dir := filepath.Dir(cfg.SQLitePath)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
			}
		}
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using SQLite store", slog.String("path", cfg.SQLitePath))
		return db, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Prepare pings the store, creates its schema if it manages one, and seeds
// the destination catalog into an empty store. It returns the number of
// destinations inserted.
//
// Ping and seed failures are returned. A schema failure is only logged: the
// validators and the username index harden the store but the API works
// without them, for example on a user that lacks createCollection rights.
func Prepare(ctx context.Context, store repository.Store, destinations *service.DestinationService, logger *slog.Logger) (int, error) {
	if err := store.Ping(ctx); err != nil {
		return 0, fmt.Errorf("store unreachable: %w", err)
	}
	logger.Info("store connected")

	if schema, ok := store.(initializer); ok {
		if err := schema.Init(ctx); err != nil {
			logger.Warn("store schema setup failed", slog.String("error", err.Error()))
		}
	}

	n, err := destinations.SeedIfEmpty(ctx)
	if err != nil {
		return 0, fmt.Errorf("seeding destinations: %w", err)
	}
	return n, nil
}
