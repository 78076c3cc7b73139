package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"elevate/internal/models"
)

func (s *Storage) SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const op = "storage.mongo.SaveContact"

	res, err := s.contacts.InsertOne(ctx, fromContact(contact))
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid.Hex()
	}

	return contact, nil
}

func (s *Storage) ContactStats(ctx context.Context) (*models.ContactStats, error) {
	const op = "storage.mongo.ContactStats"

	stats := &models.ContactStats{}

	var err error
	if stats.TotalContacts, err = s.contacts.CountDocuments(ctx, bson.D{}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fresh := bson.D{{Key: "status", Value: models.ContactStatusNew}}
	if stats.NewContacts, err = s.contacts.CountDocuments(ctx, fresh); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if stats.TypeStats, err = s.groupCounts(ctx, s.contacts, groupBy(nil, "type")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if stats.StatusStats, err = s.groupCounts(ctx, s.contacts, groupBy(nil, "status")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
