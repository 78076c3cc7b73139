package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevate/internal/config"
	"elevate/internal/models"
	"elevate/internal/storage"
)

func TestDSNAndURL(t *testing.T) {
	t.Parallel()

	cfg := &config.Database{
		Host:     "db",
		Port:     5432,
		User:     "club",
		Password: "secret",
		DBName:   "elevate",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=club password=secret dbname=elevate sslmode=disable", DSN(cfg))
	assert.Equal(t, "postgres://club:secret@db:5432/elevate?sslmode=disable", URL(cfg))
}

func TestListWhere(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		typ       models.EventListType
		wantWhere string
		wantArgs  []any
	}{
		{typ: models.EventsAll, wantWhere: "WHERE is_active"},
		{typ: models.EventsUpcoming, wantWhere: "WHERE is_active AND date >= $1", wantArgs: []any{now}},
		{typ: models.EventsPast, wantWhere: "WHERE is_active AND date < $1", wantArgs: []any{now}},
	}

	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			t.Parallel()

			where, args := listWhere(models.EventFilter{Type: tc.typ, Now: now})
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolation})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

// newTestStorage migrates the database at ELEVATE_TEST_POSTGRES_URL and skips when it is unset.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	url := os.Getenv("ELEVATE_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("ELEVATE_TEST_POSTGRES_URL is not set")
	}

	m, err := migrate.New("file://../../../migrations", url)
	require.NoError(t, err)
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	db, err := sqlOpen(url)
	require.NoError(t, err)

	s := &Storage{DB: db}
	t.Cleanup(func() {
		_, _ = s.DB.Exec(`TRUNCATE events, event_attendees, members, newsletters, contacts`)
		_ = s.Close(context.Background())
	})

	return s
}

func TestRegisterAttendee_Integration(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	capacity := 4
	id, err := s.CreateEvent(ctx, models.Event{
		Title:        "Systems Seminar",
		Description:  "Kernels and caches",
		Date:         now.Add(72 * time.Hour),
		Time:         "18:00",
		Location:     "Room 101",
		Category:     models.CategorySeminar,
		MaxAttendees: &capacity,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.RegisterAttendee(ctx, id, models.Attendee{
				Name:         fmt.Sprintf("Attendee %d", i),
				Email:        fmt.Sprintf("attendee%d@example.com", i%6),
				RegisteredAt: now,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, storage.ErrEventFull) || errors.Is(err, storage.ErrAlreadyRegistered), err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded)

	event, err := s.Event(ctx, id)
	require.NoError(t, err)
	assert.Len(t, event.RegisteredAttendees, capacity)

	_, err = s.RegisterAttendee(ctx, "missing", models.Attendee{Name: "X", Email: "x@example.com", RegisteredAt: now})
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	stats, err := s.EventStats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UpcomingEvents)
	assert.Equal(t, int64(capacity), stats.TotalRegistrations)
}

func TestMembers_Integration(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	member := models.Member{
		Name:       "Grace Hopper",
		Email:      "Grace@Example.com",
		Year:       "3rd",
		Interests:  []string{"DevOps"},
		Experience: models.ExperienceExpert,
		Motivation: "Compilers for everyone, please.",
		Status:     models.MemberStatusPending,
		JoinedAt:   now,
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := s.SaveMember(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", saved.Email)

	_, err = s.SaveMember(ctx, member)
	assert.ErrorIs(t, err, storage.ErrMemberExists)

	found, err := s.MemberByEmail(ctx, "GRACE@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = s.MemberByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrMemberNotFound)
}
