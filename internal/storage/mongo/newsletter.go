package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"elevate/internal/models"
	"elevate/internal/storage"
)

func (s *Storage) Subscribe(ctx context.Context, subscriber models.Subscriber) (models.SubscribeOutcome, error) {
	const op = "storage.mongo.Subscribe"

	doc := fromSubscriber(subscriber)
	now := subscriber.SubscribedAt

	set := bson.D{
		{Key: "isActive", Value: true},
		{Key: "subscribedAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
	if doc.Name != "" {
		set = append(set, bson.E{Key: "name", Value: doc.Name})
	}

	res, err := s.newsletters.UpdateOne(ctx,
		bson.D{{Key: "email", Value: doc.Email}, {Key: "isActive", Value: false}},
		bson.D{
			{Key: "$set", Value: set},
			{Key: "$unset", Value: bson.D{{Key: "unsubscribedAt", Value: ""}}},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount > 0 {
		return models.Resubscribed, nil
	}

	_, err = s.newsletters.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberExists)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return models.Subscribed, nil
}

func (s *Storage) Unsubscribe(ctx context.Context, email string, now time.Time) (models.UnsubscribeOutcome, error) {
	const op = "storage.mongo.Unsubscribe"

	email = models.NormalizeEmail(email)

	res, err := s.newsletters.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}, {Key: "isActive", Value: true}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isActive", Value: false},
			{Key: "unsubscribedAt", Value: now},
			{Key: "updatedAt", Value: now},
		}}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount > 0 {
		return models.Unsubscribed, nil
	}

	n, err := s.newsletters.CountDocuments(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberNotFound)
	}

	return models.AlreadyUnsubscribed, nil
}

func (s *Storage) NewsletterStats(ctx context.Context) (*models.NewsletterStats, error) {
	const op = "storage.mongo.NewsletterStats"

	active := bson.D{{Key: "isActive", Value: true}}
	stats := &models.NewsletterStats{}

	var err error
	if stats.TotalSubscribers, err = s.newsletters.CountDocuments(ctx, active); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	inactive := bson.D{{Key: "isActive", Value: false}}
	if stats.TotalUnsubscribed, err = s.newsletters.CountDocuments(ctx, inactive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if stats.SourceStats, err = s.groupCounts(ctx, s.newsletters, groupBy(active, "source")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
