package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"elevate/internal/models"
	"elevate/internal/storage"
)

const eventColumns = `
	id, title, description, date, time, location, image, category, tags,
	max_attendees, is_active, is_featured, registration_deadline,
	organizer_name, organizer_email, organizer_phone, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*models.Event, error) {
	var (
		event    models.Event
		category string
		capacity sql.NullInt64
		deadline sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Image,
		&category,
		pq.Array(&event.Tags),
		&capacity,
		&event.IsActive,
		&event.IsFeatured,
		&deadline,
		&event.Organizer.Name,
		&event.Organizer.Email,
		&event.Organizer.Phone,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Category = models.Category(category)
	if capacity.Valid {
		limit := int(capacity.Int64)
		event.MaxAttendees = &limit
	}
	if deadline.Valid {
		d := deadline.Time
		event.RegistrationDeadline = &d
	}

	return &event, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	const op = "storage.postgres.CreateEvent"

	if !event.Category.Valid() {
		return "", fmt.Errorf("%s: invalid category %q", op, event.Category)
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err = tx.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Location,
		event.Image,
		string(event.Category),
		pq.Array(event.Tags),
		event.MaxAttendees,
		event.IsActive,
		event.IsFeatured,
		event.RegistrationDeadline,
		event.Organizer.Name,
		event.Organizer.Email,
		event.Organizer.Phone,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create event: %w", op, err)
	}

	for _, a := range event.RegisteredAttendees {
		if err = insertAttendee(ctx, tx, event.ID, a); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return event.ID, nil
}

func insertAttendee(ctx context.Context, tx *sql.Tx, eventID string, a models.Attendee) error {
	query := `
		INSERT INTO event_attendees (event_id, name, email, registered_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.ExecContext(ctx, query, eventID, a.Name, models.NormalizeEmail(a.Email), a.RegisteredAt)
	if isUniqueViolation(err) {
		return storage.ErrAlreadyRegistered
	}
	if err != nil {
		return fmt.Errorf("failed to add attendee: %w", err)
	}

	return nil
}

func (s *Storage) Event(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.Event"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get event: %w", op, err)
	}

	rosters, err := loadRosters(ctx, s.DB, []string{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	event.RegisteredAttendees = rosters[id]

	return event, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// loadRosters loads the attendees of every listed event in registration order.
func loadRosters(ctx context.Context, q querier, ids []string) (map[string][]models.Attendee, error) {
	query := `
		SELECT event_id, name, email, registered_at
		FROM event_attendees
		WHERE event_id = ANY($1)
		ORDER BY registered_at, id`

	rows, err := q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendees: %w", err)
	}
	defer rows.Close()

	rosters := make(map[string][]models.Attendee, len(ids))
	for rows.Next() {
		var (
			eventID string
			a       models.Attendee
		)
		if err = rows.Scan(&eventID, &a.Name, &a.Email, &a.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		rosters[eventID] = append(rosters[eventID], a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendees: %w", err)
	}

	return rosters, nil
}

func (s *Storage) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int64, error) {
	const op = "storage.postgres.ListEvents"

	where, args := listWhere(filter)

	var total int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: failed to count events: %w", op, err)
	}

	order := "ASC"
	if filter.Descending() {
		order = "DESC"
	}

	query := `SELECT ` + eventColumns + ` FROM events ` + where + ` ORDER BY date ` + order + `, id`
	query += fmt.Sprintf(" OFFSET %d", filter.Skip())
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to get events: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	ids := make([]string, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, *event)
		ids = append(ids, event.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	if len(ids) == 0 {
		return events, total, nil
	}

	rosters, err := loadRosters(ctx, s.DB, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	for i := range events {
		events[i].RegisteredAttendees = rosters[events[i].ID]
	}

	return events, total, nil
}

func listWhere(filter models.EventFilter) (string, []any) {
	switch filter.Type {
	case models.EventsUpcoming:
		return "WHERE is_active AND date >= $1", []any{filter.Now}
	case models.EventsPast:
		return "WHERE is_active AND date < $1", []any{filter.Now}
	default:
		return "WHERE is_active", nil
	}
}

// RegisterAttendee locks the event row so concurrent registrations for the same
// event are serialized, then applies the registration rules and inserts.
func (s *Storage) RegisterAttendee(ctx context.Context, eventID string, attendee models.Attendee) (*models.Registration, error) {
	const op = "storage.postgres.RegisterAttendee"

	attendee.Email = models.NormalizeEmail(attendee.Email)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`

	event, err := scanEvent(tx.QueryRowContext(ctx, query, eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to lock event: %w", op, err)
	}

	rosters, err := loadRosters(ctx, tx, []string{eventID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	event.RegisteredAttendees = rosters[eventID]

	if err = storage.CheckRegistration(event, attendee.Email, attendee.RegisteredAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = insertAttendee(ctx, tx, eventID, attendee); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE events SET updated_at = $2 WHERE id = $1`, eventID, attendee.RegisteredAt)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to touch event: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Registration{
		EventTitle:    event.Title,
		AttendeeCount: event.AttendeeCount() + 1,
	}, nil
}

func (s *Storage) EventStats(ctx context.Context, now time.Time) (*models.EventStats, error) {
	const op = "storage.postgres.EventStats"

	stats := &models.EventStats{}

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE date >= $1)
		FROM events
		WHERE is_active`

	if err := s.DB.QueryRowContext(ctx, query, now).Scan(&stats.TotalEvents, &stats.UpcomingEvents); err != nil {
		return nil, fmt.Errorf("%s: failed to count events: %w", op, err)
	}
	stats.PastEvents = stats.TotalEvents - stats.UpcomingEvents

	categories, err := s.groupCounts(ctx, `
		SELECT category, COUNT(*)
		FROM events
		WHERE is_active
		GROUP BY category
		ORDER BY 2 DESC, 1`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to group categories: %w", op, err)
	}
	stats.CategoryStats = categories

	query = `
		SELECT COUNT(a.id)
		FROM event_attendees a
		JOIN events e ON e.id = a.event_id
		WHERE e.is_active`

	if err = s.DB.QueryRowContext(ctx, query).Scan(&stats.TotalRegistrations); err != nil {
		return nil, fmt.Errorf("%s: failed to count registrations: %w", op, err)
	}

	return stats, nil
}
