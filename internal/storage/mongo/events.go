package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"elevate/internal/models"
	"elevate/internal/storage"
)

// rosterEmailsHidden keeps attendee emails out of list reads.
var rosterEmailsHidden = bson.D{{Key: "registeredAttendees.email", Value: 0}}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	const op = "storage.mongo.CreateEvent"

	if !event.Category.Valid() {
		return "", fmt.Errorf("%s: invalid category %q", op, event.Category)
	}

	doc := fromEvent(event)
	if event.ID != "" {
		oid, ok := objectID(event.ID)
		if !ok {
			return "", fmt.Errorf("%s: invalid event id %q", op, event.ID)
		}
		doc.ID = oid
	}

	res, err := s.events.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id %v", op, res.InsertedID)
	}

	return oid.Hex(), nil
}

func (s *Storage) Event(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.mongo.Event"

	event, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *Storage) findEvent(ctx context.Context, id string) (*models.Event, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, storage.ErrEventNotFound
	}

	var doc eventDocument
	err := s.events.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	event := toEvent(doc)
	return &event, nil
}

func (s *Storage) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int64, error) {
	const op = "storage.mongo.ListEvents"

	query := listFilter(filter)

	total, err := s.events.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	order := 1
	if filter.Descending() {
		order = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: order}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Skip())).
		SetProjection(rosterEmailsHidden)
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := s.events.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var docs []eventDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	events := make([]models.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, toEvent(d))
	}

	return events, total, nil
}

func listFilter(filter models.EventFilter) bson.D {
	query := bson.D{{Key: "isActive", Value: true}}

	switch filter.Type {
	case models.EventsUpcoming:
		query = append(query, bson.E{Key: "date", Value: bson.D{{Key: "$gte", Value: filter.Now}}})
	case models.EventsPast:
		query = append(query, bson.E{Key: "date", Value: bson.D{{Key: "$lt", Value: filter.Now}}})
	}

	return query
}

// RegisterAttendee pushes the attendee only if every registration rule still holds
// at write time. When nothing matches, the event is re-read to tell the caller why.
func (s *Storage) RegisterAttendee(ctx context.Context, eventID string, attendee models.Attendee) (*models.Registration, error) {
	const op = "storage.mongo.RegisterAttendee"

	oid, ok := objectID(eventID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	doc := fromAttendee(attendee)
	now := attendee.RegisteredAt

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "registeredAttendees", Value: doc}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(rosterEmailsHidden)

	for attempt := 0; attempt < registerAttempts; attempt++ {
		var updated eventDocument
		err := s.events.FindOneAndUpdate(ctx, registrationFilter(oid, doc.Email, now), update, opts).Decode(&updated)
		if err == nil {
			return &models.Registration{
				EventTitle:    updated.Title,
				AttendeeCount: len(updated.RegisteredAttendees),
			}, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		event, err := s.findEvent(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = storage.CheckRegistration(event, doc.Email, now); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// The event changed between the conditional update and the re-read.
	}

	return nil, fmt.Errorf("%s: event %s kept changing during registration", op, eventID)
}

// registrationFilter matches the event only while it is active, its registration
// window is open at now, email is not on the roster and a seat is left.
func registrationFilter(id primitive.ObjectID, email string, now time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "isActive", Value: true},
		{Key: "registeredAttendees.email", Value: bson.D{{Key: "$ne", Value: email}}},
		{Key: "$and", Value: bson.A{
			bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "registrationDeadline", Value: bson.D{{Key: "$gt", Value: now}}}},
				bson.D{
					{Key: "registrationDeadline", Value: nil},
					{Key: "date", Value: bson.D{{Key: "$gt", Value: now}}},
				},
			}}},
			bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "maxAttendees", Value: nil}},
				bson.D{{Key: "$expr", Value: bson.D{{Key: "$lt", Value: bson.A{
					bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$registeredAttendees", bson.A{}}}}}},
					"$maxAttendees",
				}}}}},
			}}},
		}},
	}
}

func (s *Storage) EventStats(ctx context.Context, now time.Time) (*models.EventStats, error) {
	const op = "storage.mongo.EventStats"

	active := bson.D{{Key: "isActive", Value: true}}
	stats := &models.EventStats{}

	var err error
	if stats.TotalEvents, err = s.events.CountDocuments(ctx, active); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	upcoming := bson.D{{Key: "isActive", Value: true}, {Key: "date", Value: bson.D{{Key: "$gte", Value: now}}}}
	if stats.UpcomingEvents, err = s.events.CountDocuments(ctx, upcoming); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats.PastEvents = stats.TotalEvents - stats.UpcomingEvents

	if stats.CategoryStats, err = s.groupCounts(ctx, s.events, groupBy(active, "category")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: active}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$registeredAttendees", bson.A{}}}}},
			}}}},
		}}},
	}

	cursor, err := s.events.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var totals []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(totals) > 0 {
		stats.TotalRegistrations = totals[0].Total
	}

	return stats, nil
}
