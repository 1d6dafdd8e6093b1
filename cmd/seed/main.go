// Command seed prepares a store and exits: it checks connectivity, creates
// the MongoDB collections and username index, and inserts the destination
// catalog if the destinations collection is empty.
//
// Run it once before starting several API instances against the same
// database; the instances then find a non-empty catalog and skip seeding.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakif/travel-blog/internal/config"
	"github.com/sakif/travel-blog/internal/server"
	"github.com/sakif/travel-blog/internal/service"
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

	if err := run(cfg, logger); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Store.MongoTimeout)
	defer cancel()

	store, err := server.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	destinations := service.NewDestinationService(store.Destinations(), logger)
	n, err := server.Prepare(ctx, store, destinations, logger)
	if err != nil {
		return err
	}

	if n == 0 {
		logger.Info("destinations already present; nothing to seed")
		return nil
	}
	logger.Info("seed complete", slog.Int("inserted", n))
	return nil
}
