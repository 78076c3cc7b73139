package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"elevate/internal/models"
)

func (s *Storage) SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const op = "storage.postgres.SaveContact"

	contact.ID = uuid.NewString()

	query := `
		INSERT INTO contacts (id, name, email, subject, message, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.DB.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.Type,
		contact.Status,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: failed to save contact: %w", op, err)
	}

	return contact, nil
}

func (s *Storage) ContactStats(ctx context.Context) (*models.ContactStats, error) {
	const op = "storage.postgres.ContactStats"

	stats := &models.ContactStats{}

	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM contacts`

	err := s.DB.QueryRowContext(ctx, query, models.ContactStatusNew).Scan(&stats.TotalContacts, &stats.NewContacts)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count contacts: %w", op, err)
	}

	stats.TypeStats, err = s.groupCounts(ctx, `
		SELECT type, COUNT(*)
		FROM contacts
		GROUP BY type
		ORDER BY 2 DESC, 1`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group types: %w", op, err)
	}

	stats.StatusStats, err = s.groupCounts(ctx, `
		SELECT status, COUNT(*)
		FROM contacts
		GROUP BY status
		ORDER BY 2 DESC, 1`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group statuses: %w", op, err)
	}

	return stats, nil
}
