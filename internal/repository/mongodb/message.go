package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo stores messages as open documents: the client's body fields sit
// next to _id and createdAt at the top level.
type MessageRepo struct {
	coll *mongo.Collection
}

func (r *MessageRepo) Create(ctx context.Context, message *model.Message) error {
	id := primitive.NewObjectID()
	createdAt := time.Now().UTC().Truncate(time.Millisecond)

	doc := make(bson.M, len(message.Body)+2)
	for k, v := range message.Body {
		doc[k] = v
	}
	doc[model.MessageIDKey] = id
	doc[model.MessageCreatedAtKey] = primitive.NewDateTimeFromTime(createdAt)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongodb: inserting message: %w", err)
	}

	message.ID = id.Hex()
	message.CreatedAt = createdAt
	return nil
}

// List sorts by createdAt, then _id, whose leading timestamp and counter keep
// same-millisecond inserts from one process in order.
func (r *MessageRepo) List(ctx context.Context) ([]model.Message, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: model.MessageCreatedAtKey, Value: 1},
		{Key: model.MessageIDKey, Value: 1},
	})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: finding messages: %w", err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decoding messages: %w", err)
	}

	messages := make([]model.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, messageFromDoc(doc))
	}
	return messages, nil
}

// Delete ignores malformed ids: they cannot name a stored message.
func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("mongodb: deleting message %s: %w", id, err)
	}
	return nil
}

// messageFromDoc splits a stored document into the reserved fields and the
// free-form body. Documents written by other clients may carry an _id that is
// not an ObjectID or lack createdAt; those are rendered as best we can.
func messageFromDoc(doc bson.M) model.Message {
	msg := model.Message{Body: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case model.MessageIDKey:
			if oid, ok := v.(primitive.ObjectID); ok {
				msg.ID = oid.Hex()
			} else {
				msg.ID = fmt.Sprint(v)
			}
		case model.MessageCreatedAtKey:
			if dt, ok := v.(primitive.DateTime); ok {
				msg.CreatedAt = dt.Time().UTC()
			}
		default:
			msg.Body[k] = v
		}
	}
	return msg
}
