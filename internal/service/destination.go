// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → presence checks, error classification
//	Repository (Data layer)  → one database call per operation
//
// Services take repository interfaces, not *mongodb.Store or *sqlite.DB, so
// the same code runs against either store and against the in-memory fakes in
// the tests. Services return apperror kinds and never mention HTTP; the
// handlers decide the status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

// DestinationService seeds and serves the destination catalog.
type DestinationService struct {
	repo    repository.DestinationRepository
	catalog func() []model.Destination
	logger  *slog.Logger
}

// NewDestinationService creates a DestinationService that seeds DefaultCatalog.
func NewDestinationService(repo repository.DestinationRepository, logger *slog.Logger) *DestinationService {
	return &DestinationService{
		repo:    repo,
		catalog: DefaultCatalog,
		logger:  logger,
	}
}

// SeedIfEmpty inserts the catalog when the store holds no destinations and
// returns how many records it inserted. A non-empty store is left untouched,
// even if it holds fewer records than the catalog.
//
// Two processes booting against the same empty store can both see a zero
// count and both insert. Deployments running several instances should seed
// once with cmd/seed before starting them.
func (s *DestinationService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service/destination: counting destinations: %w", err)
	}
	if count != 0 {
		s.logger.Debug("destinations already seeded", slog.Int64("count", count))
		return 0, nil
	}

	destinations := s.catalog()
	for i := range destinations {
		if err := destinations[i].Validate(); err != nil {
			return 0, fmt.Errorf("service/destination: catalog entry %d: %w", i, err)
		}
	}

	if err := s.repo.InsertMany(ctx, destinations); err != nil {
		return 0, fmt.Errorf("service/destination: seeding destinations: %w", err)
	}

	s.logger.Info("destinations seeded", slog.Int("count", len(destinations)))
	return len(destinations), nil
}

// List returns every destination, or only the popular ones.
func (s *DestinationService) List(ctx context.Context, popularOnly bool) ([]model.Destination, error) {
	destinations, err := s.repo.List(ctx, repository.DestinationFilter{PopularOnly: popularOnly})
	if err != nil {
		return nil, fmt.Errorf("service/destination: listing destinations: %w", err)
	}
	return destinations, nil
}

// GetByID returns one destination. Unknown and malformed ids both surface as
// apperror.ErrNotFound.
func (s *DestinationService) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	destination, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/destination: fetching destination %s: %w", id, err)
	}
	return destination, nil
}
