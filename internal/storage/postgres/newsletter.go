package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"elevate/internal/models"
	"elevate/internal/storage"
)

// Subscribe inserts a new subscriber or reactivates an inactive one in a single
// statement. An active row makes the upsert return nothing.
func (s *Storage) Subscribe(ctx context.Context, subscriber models.Subscriber) (models.SubscribeOutcome, error) {
	const op = "storage.postgres.Subscribe"

	query := `
		INSERT INTO newsletters (id, email, name, is_active, source, pref_events, pref_projects,
			pref_workshops, pref_general, subscribed_at, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (email) DO UPDATE SET
			is_active = TRUE,
			name = COALESCE(NULLIF(EXCLUDED.name, ''), newsletters.name),
			subscribed_at = EXCLUDED.subscribed_at,
			unsubscribed_at = NULL,
			updated_at = EXCLUDED.updated_at
		WHERE NOT newsletters.is_active
		RETURNING (xmax = 0)`

	var inserted bool
	err := s.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		models.NormalizeEmail(subscriber.Email),
		subscriber.Name,
		subscriber.Source,
		subscriber.Preferences.Events,
		subscriber.Preferences.Projects,
		subscriber.Preferences.Workshops,
		subscriber.Preferences.General,
		subscriber.SubscribedAt,
		subscriber.CreatedAt,
		subscriber.UpdatedAt,
	).Scan(&inserted)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberExists)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: failed to subscribe: %w", op, err)
	}

	if inserted {
		return models.Subscribed, nil
	}

	return models.Resubscribed, nil
}

func (s *Storage) Unsubscribe(ctx context.Context, email string, now time.Time) (models.UnsubscribeOutcome, error) {
	const op = "storage.postgres.Unsubscribe"

	email = models.NormalizeEmail(email)

	query := `
		UPDATE newsletters
		SET is_active = FALSE, unsubscribed_at = $2, updated_at = $2
		WHERE email = $1 AND is_active`

	res, err := s.DB.ExecContext(ctx, query, email, now)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to unsubscribe: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if affected > 0 {
		return models.Unsubscribed, nil
	}

	var exists bool
	err = s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM newsletters WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check subscriber: %w", op, err)
	}
	if !exists {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberNotFound)
	}

	return models.AlreadyUnsubscribed, nil
}

func (s *Storage) NewsletterStats(ctx context.Context) (*models.NewsletterStats, error) {
	const op = "storage.postgres.NewsletterStats"

	stats := &models.NewsletterStats{}

	query := `
		SELECT COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active)
		FROM newsletters`

	err := s.DB.QueryRowContext(ctx, query).Scan(&stats.TotalSubscribers, &stats.TotalUnsubscribed)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count subscribers: %w", op, err)
	}

	stats.SourceStats, err = s.groupCounts(ctx, `
		SELECT source, COUNT(*)
		FROM newsletters
		WHERE is_active
		GROUP BY source
		ORDER BY 2 DESC, 1`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group sources: %w", op, err)
	}

	return stats, nil
}
