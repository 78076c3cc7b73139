package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elevate/internal/models"
	"elevate/internal/storage"
)

func (s *Storage) SaveMember(ctx context.Context, member models.Member) (models.Member, error) {
	const op = "storage.mongo.SaveMember"

	doc := fromMember(member)

	res, err := s.members.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return models.Member{}, fmt.Errorf("%s: %w", op, storage.ErrMemberExists)
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("%s: %w", op, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}

	return toMember(doc), nil
}

func (s *Storage) MemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	const op = "storage.mongo.MemberByEmail"

	var doc memberDocument
	err := s.members.FindOne(ctx, bson.D{{Key: "email", Value: models.NormalizeEmail(email)}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrMemberNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	member := toMember(doc)
	return &member, nil
}

func (s *Storage) MemberStats(ctx context.Context) (*models.MemberStats, error) {
	const op = "storage.mongo.MemberStats"

	approved := bson.D{{Key: "status", Value: models.MemberStatusApproved}}
	stats := &models.MemberStats{}

	var err error
	if stats.TotalMembers, err = s.members.CountDocuments(ctx, approved); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pending := bson.D{{Key: "status", Value: models.MemberStatusPending}}
	if stats.PendingMembers, err = s.members.CountDocuments(ctx, pending); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	interests := mongo.Pipeline{
		{{Key: "$match", Value: approved}},
		{{Key: "$unwind", Value: "$interests"}},
	}
	interests = append(interests, groupBy(nil, "interests")...)
	if stats.InterestStats, err = s.groupCounts(ctx, s.members, interests); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	years, err := s.groupCounts(ctx, s.members, groupBy(approved, "year"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats.YearStats = models.SortByKey(years)

	return stats, nil
}
