package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEvent_Deadline(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	deadline := date.Add(-48 * time.Hour)

	withoutDeadline := Event{Date: date}
	assert.Equal(t, date, withoutDeadline.Deadline())

	withDeadline := Event{Date: date, RegistrationDeadline: &deadline}
	assert.Equal(t, deadline, withDeadline.Deadline())
}

func TestEvent_IsRegistrationOpen(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		event Event
		want  bool
	}{
		{
			name:  "active with future date",
			event: Event{IsActive: true, Date: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "inactive with future date",
			event: Event{IsActive: false, Date: now.Add(time.Hour)},
			want:  false,
		},
		{
			name:  "deadline equal to now",
			event: Event{IsActive: true, Date: now},
			want:  false,
		},
		{
			name: "deadline passed before event date",
			event: Event{
				IsActive:             true,
				Date:                 now.Add(24 * time.Hour),
				RegistrationDeadline: func() *time.Time { d := now.Add(-time.Second); return &d }(),
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.event.IsRegistrationOpen(now))
		})
	}
}

func TestEvent_HasAttendeeAndIsFull(t *testing.T) {
	t.Parallel()

	e := Event{
		MaxAttendees: intPtr(2),
		RegisteredAttendees: []Attendee{
			{Name: "Alice", Email: "alice@example.com"},
		},
	}

	assert.True(t, e.HasAttendee("alice@example.com"))
	assert.True(t, e.HasAttendee("  ALICE@example.com "))
	assert.False(t, e.HasAttendee("bob@example.com"))
	assert.False(t, e.IsFull())

	e.RegisteredAttendees = append(e.RegisteredAttendees, Attendee{Name: "Bob", Email: "bob@example.com"})
	assert.True(t, e.IsFull())

	unlimited := Event{RegisteredAttendees: e.RegisteredAttendees}
	assert.False(t, unlimited.IsFull())
}

func TestEvent_View(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := Event{
		ID:       "e1",
		Title:    "Go Workshop",
		Date:     now.Add(time.Hour),
		IsActive: true,
		RegisteredAttendees: []Attendee{
			{Name: "Alice", Email: "alice@example.com", RegisteredAt: now},
		},
	}

	withRoster := e.View(now, true)
	assert.Equal(t, 1, withRoster.AttendeeCount)
	assert.True(t, withRoster.IsRegistrationOpen)
	assert.NotNil(t, withRoster.Tags)
	require.Len(t, withRoster.RegisteredAttendees, 1)
	assert.Equal(t, "Alice", withRoster.RegisteredAttendees[0].Name)

	listed := e.View(now, false)
	assert.Equal(t, 1, listed.AttendeeCount)
	assert.Nil(t, listed.RegisteredAttendees)
}

func TestEventFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, EventFilter{Limit: 10, Page: 1}.Skip())
	assert.Equal(t, 20, EventFilter{Limit: 10, Page: 3}.Skip())
	assert.Equal(t, 0, EventFilter{Limit: 10, Page: 0}.Skip())
	assert.Equal(t, math.MaxInt, EventFilter{Limit: 10, Page: math.MaxInt}.Skip())
	assert.Equal(t, math.MaxInt, EventFilter{Limit: 100, Page: math.MaxInt/10 + 1}.Skip())
	assert.Equal(t, (math.MaxInt/100)*100, EventFilter{Limit: 100, Page: math.MaxInt/100 + 1}.Skip())
	assert.True(t, EventFilter{Type: EventsPast}.Descending())
	assert.False(t, EventFilter{Type: EventsUpcoming}.Descending())
}

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryHackathon.Valid())
	assert.False(t, Category("party").Valid())
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM\t"))
}
