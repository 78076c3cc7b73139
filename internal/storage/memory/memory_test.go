package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevate/internal/models"
	"elevate/internal/storage"
)

func intPtr(v int) *int { return &v }

func newEvent(now time.Time, maxAttendees *int) models.Event {
	return models.Event{
		Title:        "Intro to Go",
		Description:  "Hands-on workshop",
		Date:         now.Add(72 * time.Hour),
		Time:         "18:00",
		Location:     "Lab 3",
		Image:        "/img/go.png",
		Category:     models.CategoryWorkshop,
		MaxAttendees: maxAttendees,
		IsActive:     true,
	}
}

func attendee(name, email string, at time.Time) models.Attendee {
	return models.Attendee{Name: name, Email: email, RegisteredAt: at}
}

func TestRegisterAttendee_CapacityOfOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	id, err := s.CreateEvent(ctx, newEvent(now, intPtr(1)))
	require.NoError(t, err)

	reg, err := s.RegisterAttendee(ctx, id, attendee("Alice", "alice@example.com", now))
	require.NoError(t, err)
	assert.Equal(t, "Intro to Go", reg.EventTitle)
	assert.Equal(t, 1, reg.AttendeeCount)

	_, err = s.RegisterAttendee(ctx, id, attendee("Bob", "bob@example.com", now))
	assert.ErrorIs(t, err, storage.ErrEventFull)

	event, err := s.Event(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, event.AttendeeCount())
}

func TestRegisterAttendee_ClosedWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	passed := newEvent(now, nil)
	deadline := now.Add(-time.Second)
	passed.RegistrationDeadline = &deadline
	passedID, err := s.CreateEvent(ctx, passed)
	require.NoError(t, err)

	inactive := newEvent(now, intPtr(100))
	inactive.IsActive = false
	inactiveID, err := s.CreateEvent(ctx, inactive)
	require.NoError(t, err)

	_, err = s.RegisterAttendee(ctx, passedID, attendee("Alice", "alice@example.com", now))
	assert.ErrorIs(t, err, storage.ErrRegistrationClosed)

	_, err = s.RegisterAttendee(ctx, inactiveID, attendee("Alice", "alice@example.com", now))
	assert.ErrorIs(t, err, storage.ErrRegistrationClosed)
}

func TestRegisterAttendee_NotFound(t *testing.T) {
	t.Parallel()

	_, err := New().RegisterAttendee(context.Background(), "missing", attendee("Alice", "alice@example.com", time.Now()))
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestRegisterAttendee_RepeatIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	id, err := s.CreateEvent(ctx, newEvent(now, nil))
	require.NoError(t, err)

	_, err = s.RegisterAttendee(ctx, id, attendee("Alice", "alice@example.com", now))
	require.NoError(t, err)

	_, err = s.RegisterAttendee(ctx, id, attendee("Alice", "Alice@Example.com ", now))
	assert.ErrorIs(t, err, storage.ErrAlreadyRegistered)

	event, err := s.Event(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, event.AttendeeCount())
}

func TestRegisterAttendee_Concurrent(t *testing.T) {
	t.Parallel()

	const (
		capacity = 5
		callers  = 50
	)

	ctx := context.Background()
	now := time.Now()
	s := New()

	id, err := s.CreateEvent(ctx, newEvent(now, intPtr(capacity)))
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		full      atomic.Int32
		duplicate atomic.Int32
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			// every address is used twice to race duplicates as well as capacity
			email := fmt.Sprintf("user%d@example.com", i/2)
			_, err := s.RegisterAttendee(ctx, id, attendee(gofakeit.Name(), email, now))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, storage.ErrEventFull):
				full.Add(1)
			case errors.Is(err, storage.ErrAlreadyRegistered):
				duplicate.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), succeeded.Load())
	assert.Equal(t, int32(callers-capacity), full.Load()+duplicate.Load())

	event, err := s.Event(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, capacity, event.AttendeeCount())

	seen := make(map[string]bool)
	for _, a := range event.RegisteredAttendees {
		assert.False(t, seen[a.Email], "duplicate attendee %s", a.Email)
		seen[a.Email] = true
	}
}

func TestListEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New()

	for i, offset := range []time.Duration{-72 * time.Hour, -24 * time.Hour, 24 * time.Hour, 48 * time.Hour, 96 * time.Hour} {
		e := newEvent(now, nil)
		e.Title = fmt.Sprintf("event-%d", i)
		e.Date = now.Add(offset)
		_, err := s.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	hidden := newEvent(now, nil)
	hidden.IsActive = false
	_, err := s.CreateEvent(ctx, hidden)
	require.NoError(t, err)

	upcoming, total, err := s.ListEvents(ctx, models.EventFilter{Type: models.EventsUpcoming, Limit: 2, Page: 1, Now: now})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "event-2", upcoming[0].Title)
	assert.Equal(t, "event-3", upcoming[1].Title)

	page2, _, err := s.ListEvents(ctx, models.EventFilter{Type: models.EventsUpcoming, Limit: 2, Page: 2, Now: now})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "event-4", page2[0].Title)

	past, total, err := s.ListEvents(ctx, models.EventFilter{Type: models.EventsPast, Limit: 10, Page: 1, Now: now})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, past, 2)
	assert.Equal(t, "event-1", past[0].Title, "past events are newest first")

	all, total, err := s.ListEvents(ctx, models.EventFilter{Type: models.EventsAll, Limit: 10, Page: 5, Now: now})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, all)
}

func TestListEvents_HugePage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	_, err := s.CreateEvent(ctx, newEvent(now, nil))
	require.NoError(t, err)

	for _, f := range []models.EventFilter{
		{Type: models.EventsAll, Limit: 10, Page: math.MaxInt, Now: now},
		{Type: models.EventsAll, Limit: 100, Page: 922337203685477581, Now: now},
	} {
		events, total, err := s.ListEvents(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, events)
	}
}

func TestListEvents_SameDatePagesByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New()

	for _, id := range []string{"e3", "e1", "e4", "e2"} {
		e := newEvent(now, nil)
		e.ID = id
		_, err := s.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	var got []string
	for page := 1; page <= 4; page++ {
		events, _, err := s.ListEvents(ctx, models.EventFilter{Type: models.EventsAll, Limit: 1, Page: page, Now: now})
		require.NoError(t, err)
		require.Len(t, events, 1)
		got = append(got, events[0].ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, got)
}

func TestEventStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	hack := newEvent(now, nil)
	hack.Category = models.CategoryHackathon
	hackID, err := s.CreateEvent(ctx, hack)
	require.NoError(t, err)

	old := newEvent(now, nil)
	old.Date = now.Add(-time.Hour)
	_, err = s.CreateEvent(ctx, old)
	require.NoError(t, err)

	_, err = s.RegisterAttendee(ctx, hackID, attendee("Alice", "alice@example.com", now))
	require.NoError(t, err)
	_, err = s.RegisterAttendee(ctx, hackID, attendee("Bob", "bob@example.com", now))
	require.NoError(t, err)

	stats, err := s.EventStats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalEvents)
	assert.Equal(t, int64(1), stats.UpcomingEvents)
	assert.Equal(t, int64(1), stats.PastEvents)
	assert.Equal(t, int64(2), stats.TotalRegistrations)
	assert.Len(t, stats.CategoryStats, 2)
}

func TestCreateEvent_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	e := newEvent(time.Now(), nil)
	e.Category = "party"

	_, err := New().CreateEvent(context.Background(), e)
	assert.Error(t, err)
}

func TestMembers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	email := gofakeit.Email()
	saved, err := s.SaveMember(ctx, models.Member{
		Name:      gofakeit.Name(),
		Email:     email,
		Year:      "2nd",
		Interests: []string{"IoT", "DevOps"},
		Status:    models.MemberStatusApproved,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	_, err = s.SaveMember(ctx, models.Member{Name: "Again", Email: " " + email, Status: models.MemberStatusPending})
	assert.ErrorIs(t, err, storage.ErrMemberExists)

	found, err := s.MemberByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = s.MemberByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrMemberNotFound)

	_, err = s.SaveMember(ctx, models.Member{Name: "Pending", Email: "p@example.com", Status: models.MemberStatusPending, Year: "1st"})
	require.NoError(t, err)

	stats, err := s.MemberStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalMembers)
	assert.Equal(t, int64(1), stats.PendingMembers)
	assert.Len(t, stats.InterestStats, 2)
	assert.Equal(t, []models.GroupCount{{Key: "2nd", Count: 1}}, stats.YearStats)
}

func TestNewsletterLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	s := New()

	sub := models.Subscriber{
		Email:        "Jane@Example.com",
		IsActive:     true,
		Source:       models.SourceWebsite,
		Preferences:  models.DefaultPreferences(),
		SubscribedAt: now,
	}

	outcome, err := s.Subscribe(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, models.Subscribed, outcome)

	_, err = s.Subscribe(ctx, sub)
	assert.ErrorIs(t, err, storage.ErrSubscriberExists)

	gone, err := s.Unsubscribe(ctx, "jane@example.com", now)
	require.NoError(t, err)
	assert.Equal(t, models.Unsubscribed, gone)

	again, err := s.Unsubscribe(ctx, "jane@example.com", now)
	require.NoError(t, err)
	assert.Equal(t, models.AlreadyUnsubscribed, again)

	stats, err := s.NewsletterStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalSubscribers)
	assert.Equal(t, int64(1), stats.TotalUnsubscribed)

	outcome, err = s.Subscribe(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, models.Resubscribed, outcome)

	_, err = s.Unsubscribe(ctx, "stranger@example.com", now)
	assert.ErrorIs(t, err, storage.ErrSubscriberNotFound)
}

func TestContacts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	for _, typ := range []string{"general", "general", "partnership"} {
		_, err := s.SaveContact(ctx, models.Contact{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Subject: "Hello there",
			Message: gofakeit.Sentence(12),
			Type:    typ,
			Status:  models.ContactStatusNew,
		})
		require.NoError(t, err)
	}

	stats, err := s.ContactStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalContacts)
	assert.Equal(t, int64(3), stats.NewContacts)
	assert.Equal(t, models.GroupCount{Key: "general", Count: 2}, stats.TypeStats[0])
}
