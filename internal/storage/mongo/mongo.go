// Package mongo stores the club's collections in MongoDB. Field names are camelCase
// so databases written by the earlier Node service stay readable.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"elevate/internal/config"
	"elevate/internal/models"
	"elevate/internal/storage"
)

const (
	eventsCollection      = "events"
	membersCollection     = "members"
	newslettersCollection = "newsletters"
	contactsCollection    = "contacts"
)

// registerAttempts bounds how often a registration that lost a race is retried.
const registerAttempts = 3

type Storage struct {
	client      *mongo.Client
	events      *mongo.Collection
	members     *mongo.Collection
	newsletters *mongo.Collection
	contacts    *mongo.Collection
}

var _ storage.Storage = (*Storage)(nil)

func New(ctx context.Context, cfg config.Mongo) (*Storage, error) {
	const op = "storage.mongo.New"

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(cfg.Database)
	s := &Storage{
		client:      client,
		events:      db.Collection(eventsCollection),
		members:     db.Collection(membersCollection),
		newsletters: db.Collection(newslettersCollection),
		contacts:    db.Collection(contactsCollection),
	}

	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		s.events: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		s.members: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "interests", Value: 1}}},
		},
		s.newsletters: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		s.contacts: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "type", Value: 1}}},
		},
	}

	for coll, idx := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll.Name(), err)
		}
	}

	return nil
}

func (s *Storage) groupCounts(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]models.GroupCount, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var docs []groupDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	groups := make([]models.GroupCount, 0, len(docs))
	for _, d := range docs {
		groups = append(groups, models.GroupCount{Key: d.Key, Count: d.Count})
	}

	return groups, nil
}

// groupBy counts documents matching match per value of field, largest groups first.
func groupBy(match bson.D, field string) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	return append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	)
}

func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
