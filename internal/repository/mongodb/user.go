package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakif/travel-blog/internal/apperror"
	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

type UserRepo struct {
	coll *mongo.Collection
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.Missing("User not found")
		}
		return nil, fmt.Errorf("mongodb: finding user %q: %w", username, err)
	}

	return &model.User{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Password: doc.Password,
	}, nil
}

// Create relies on the unique username index (see Store.Init) to reject a
// duplicate that slipped past the service's existence check.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	doc := userDoc{
		ID:       primitive.NewObjectID(),
		Username: user.Username,
		Password: user.Password,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("user", user.Username)
		}
		return fmt.Errorf("mongodb: inserting user %q: %w", user.Username, err)
	}

	user.ID = doc.ID.Hex()
	return nil
}
