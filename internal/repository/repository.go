// Package repository declares the storage contracts the services depend on.
//
// Two implementations live in sub-packages: mongodb (the production store)
// and sqlite (an embedded store for single-binary deployments and tests).
// Both translate driver errors into apperror kinds:
//
//   - a missing or malformed id is apperror.ErrNotFound
//   - a duplicate username is apperror.ErrConflict
//
// Every other error is a plain wrapped error and means the store failed.
package repository

import (
	"context"

	"github.com/sakif/travel-blog/internal/model"
)

// DestinationFilter narrows a destination listing.
type DestinationFilter struct {
	PopularOnly bool
}

type DestinationRepository interface {
	Count(ctx context.Context) (int64, error)
	// InsertMany stores all destinations and fills in their IDs.
	InsertMany(ctx context.Context, destinations []model.Destination) error
	// List returns matches in insertion order.
	List(ctx context.Context, filter DestinationFilter) ([]model.Destination, error)
	GetByID(ctx context.Context, id string) (*model.Destination, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type MessageRepository interface {
	// Create stores the message and sets its ID and CreatedAt.
	Create(ctx context.Context, message *model.Message) error
	// List returns all messages, oldest first.
	List(ctx context.Context) ([]model.Message, error)
	// Delete removes the message if it exists. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// Store is an open database handle exposing the three collections.
type Store interface {
	Destinations() DestinationRepository
	Users() UserRepository
	Messages() MessageRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
