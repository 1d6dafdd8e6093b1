// Package mongodb implements the repository interfaces on MongoDB.
//
// One client is created at startup and shared by the three collection
// repositories; the driver's client is a connection pool and is safe for
// concurrent use. There is no retry loop on top of the driver: if the
// deployment is unreachable, operations fail after the server selection
// timeout and the handlers answer 500.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/sakif/travel-blog/internal/repository"
)

// DefaultDatabase is used when neither the config nor the URI names one.
const DefaultDatabase = "travel-blog"

const (
	usersCollection        = "users"
	destinationsCollection = "destinations"
	messagesCollection     = "messages"
)

// codeNamespaceExists is returned by create on an existing collection.
const codeNamespaceExists = 48

var _ repository.Store = (*Store)(nil)

type Config struct {
	URI      string
	Database string
	// Timeout bounds connection establishment and server selection.
	Timeout time.Duration
}

// Store owns the client and the three collection repositories.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	destinations *DestinationRepo
	users        *UserRepo
	messages     *MessageRepo
}

// Connect builds a client from cfg. mongo.Connect does not wait for the
// deployment, so a nil error only means the URI was valid; call Ping to
// find out whether the server is reachable.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongodb: connection string is empty")
	}

	dbName := cfg.Database
	if dbName == "" {
		cs, err := connstring.ParseAndValidate(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("mongodb: parsing connection string: %w", err)
		}
		dbName = cs.Database
	}
	if dbName == "" {
		dbName = DefaultDatabase
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connecting: %w", err)
	}

	return NewStore(client.Database(dbName)), nil
}

// NewStore wraps an existing database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		client:       db.Client(),
		db:           db,
		destinations: &DestinationRepo{coll: db.Collection(destinationsCollection)},
		users:        &UserRepo{coll: db.Collection(usersCollection)},
		messages:     &MessageRepo{coll: db.Collection(messagesCollection)},
	}
}

func (s *Store) Destinations() repository.DestinationRepository { return s.destinations }
func (s *Store) Users() repository.UserRepository               { return s.users }
func (s *Store) Messages() repository.MessageRepository         { return s.messages }

// DatabaseName is the database the store reads and writes.
func (s *Store) DatabaseName() string { return s.db.Name() }

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnecting: %w", err)
	}
	return nil
}

// Init creates the collections with presence/type validators and the unique
// index on users.username. Collections that already exist (for example ones
// created by an earlier deployment) keep whatever validator they have.
func (s *Store) Init(ctx context.Context) error {
	for _, c := range collectionSchemas() {
		opts := options.CreateCollection().SetValidator(bson.D{{Key: "$jsonSchema", Value: c.schema}})
		if err := s.db.CreateCollection(ctx, c.name, opts); err != nil && !isNamespaceExists(err) {
			return fmt.Errorf("mongodb: creating collection %s: %w", c.name, err)
		}
	}

	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("mongodb: creating username index: %w", err)
	}

	return nil
}

type collectionSchema struct {
	name   string
	schema bson.M
}

func collectionSchemas() []collectionSchema {
	return []collectionSchema{
		{
			name: usersCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": bson.A{"username", "password"},
				"properties": bson.M{
					"username": bson.M{"bsonType": "string"},
					"password": bson.M{"bsonType": "string"},
				},
			},
		},
		{
			name: destinationsCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": bson.A{"title", "description", "imgSrc"},
				"properties": bson.M{
					"title":       bson.M{"bsonType": "string"},
					"description": bson.M{"bsonType": "string"},
					"imgSrc":      bson.M{"bsonType": "string"},
					"isPopular":   bson.M{"bsonType": "bool"},
				},
			},
		},
		{
			name: messagesCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": bson.A{"createdAt"},
				"properties": bson.M{
					"createdAt": bson.M{"bsonType": "date"},
				},
			},
		},
	}
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists
}
