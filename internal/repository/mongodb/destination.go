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

var _ repository.DestinationRepository = (*DestinationRepo)(nil)

// destinationDoc is the stored shape of a destination.
type destinationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImgSrc      string             `bson:"imgSrc"`
	IsPopular   bool               `bson:"isPopular"`
}

func (d destinationDoc) toModel() model.Destination {
	return model.Destination{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ImgSrc:      d.ImgSrc,
		IsPopular:   d.IsPopular,
	}
}

type DestinationRepo struct {
	coll *mongo.Collection
}

func (r *DestinationRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: counting destinations: %w", err)
	}
	return n, nil
}

// InsertMany generates the ObjectIDs client-side so the caller's slice can be
// updated without relying on the order of InsertedIDs.
func (r *DestinationRepo) InsertMany(ctx context.Context, destinations []model.Destination) error {
	if len(destinations) == 0 {
		return nil
	}

	docs := make([]interface{}, len(destinations))
	ids := make([]primitive.ObjectID, len(destinations))
	for i, d := range destinations {
		ids[i] = primitive.NewObjectID()
		docs[i] = destinationDoc{
			ID:          ids[i],
			Title:       d.Title,
			Description: d.Description,
			ImgSrc:      d.ImgSrc,
			IsPopular:   d.IsPopular,
		}
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongodb: inserting %d destinations: %w", len(docs), err)
	}

	for i := range destinations {
		destinations[i].ID = ids[i].Hex()
	}
	return nil
}

// List issues an unsorted find, which returns documents in natural order.
func (r *DestinationRepo) List(ctx context.Context, filter repository.DestinationFilter) ([]model.Destination, error) {
	query := bson.D{}
	if filter.PopularOnly {
		query = bson.D{{Key: "isPopular", Value: true}}
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("mongodb: finding destinations: %w", err)
	}

	var docs []destinationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decoding destinations: %w", err)
	}

	destinations := make([]model.Destination, 0, len(docs))
	for _, d := range docs {
		destinations = append(destinations, d.toModel())
	}
	return destinations, nil
}

func (r *DestinationRepo) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("destination", id)
	}

	var doc destinationDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("destination", id)
		}
		return nil, fmt.Errorf("mongodb: finding destination %s: %w", id, err)
	}

	dest := doc.toModel()
	return &dest, nil
}
