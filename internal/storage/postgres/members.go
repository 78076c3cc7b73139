package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"elevate/internal/models"
	"elevate/internal/storage"
)

func (s *Storage) SaveMember(ctx context.Context, member models.Member) (models.Member, error) {
	const op = "storage.postgres.SaveMember"

	member.ID = uuid.NewString()
	member.Email = models.NormalizeEmail(member.Email)

	query := `
		INSERT INTO members (id, name, email, year, interests, experience, motivation,
			phone, github, linkedin, status, joined_at, last_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := s.DB.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Email,
		member.Year,
		pq.Array(member.Interests),
		member.Experience,
		member.Motivation,
		member.Phone,
		member.GitHub,
		member.LinkedIn,
		member.Status,
		member.JoinedAt,
		member.LastActive,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return models.Member{}, fmt.Errorf("%s: %w", op, storage.ErrMemberExists)
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("%s: failed to save member: %w", op, err)
	}

	return member, nil
}

func (s *Storage) MemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	const op = "storage.postgres.MemberByEmail"

	query := `
		SELECT id, name, email, year, interests, experience, motivation, phone, github,
			linkedin, status, joined_at, last_active, created_at, updated_at
		FROM members
		WHERE email = $1`

	var m models.Member
	err := s.DB.QueryRowContext(ctx, query, models.NormalizeEmail(email)).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Year,
		pq.Array(&m.Interests),
		&m.Experience,
		&m.Motivation,
		&m.Phone,
		&m.GitHub,
		&m.LinkedIn,
		&m.Status,
		&m.JoinedAt,
		&m.LastActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrMemberNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get member: %w", op, err)
	}

	return &m, nil
}

func (s *Storage) MemberStats(ctx context.Context) (*models.MemberStats, error) {
	const op = "storage.postgres.MemberStats"

	stats := &models.MemberStats{}

	query := `
		SELECT COUNT(*) FILTER (WHERE status = $1), COUNT(*) FILTER (WHERE status = $2)
		FROM members`

	err := s.DB.QueryRowContext(ctx, query, models.MemberStatusApproved, models.MemberStatusPending).
		Scan(&stats.TotalMembers, &stats.PendingMembers)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count members: %w", op, err)
	}

	stats.InterestStats, err = s.groupCounts(ctx, `
		SELECT interest, COUNT(*)
		FROM members, UNNEST(interests) AS interest
		WHERE status = $1
		GROUP BY interest
		ORDER BY 2 DESC, 1`, models.MemberStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group interests: %w", op, err)
	}

	stats.YearStats, err = s.groupCounts(ctx, `
		SELECT year, COUNT(*)
		FROM members
		WHERE status = $1
		GROUP BY year
		ORDER BY 1`, models.MemberStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group years: %w", op, err)
	}

	return stats, nil
}
