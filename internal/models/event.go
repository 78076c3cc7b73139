package models

import (
	"math"
	"strings"
	"time"
)

type Category string

const (
	CategoryWorkshop    Category = "workshop"
	CategoryHackathon   Category = "hackathon"
	CategorySeminar     Category = "seminar"
	CategoryCompetition Category = "competition"
	CategoryNetworking  Category = "networking"
	CategoryOther       Category = "other"
)

const (
	MinAttendeesLimit = 1
	MaxAttendeesLimit = 1000
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWorkshop, CategoryHackathon, CategorySeminar,
		CategoryCompetition, CategoryNetworking, CategoryOther:
		return true
	}
	return false
}

type Organizer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Attendee struct {
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Date                 time.Time  `json:"date"`
	Time                 string     `json:"time"`
	Location             string     `json:"location"`
	Image                string     `json:"image"`
	Category             Category   `json:"category"`
	Tags                 []string   `json:"tags"`
	MaxAttendees         *int       `json:"maxAttendees,omitempty"`
	RegisteredAttendees  []Attendee `json:"registeredAttendees,omitempty"`
	IsActive             bool       `json:"isActive"`
	IsFeatured           bool       `json:"isFeatured"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	Organizer            Organizer  `json:"organizer"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (e *Event) AttendeeCount() int {
	return len(e.RegisteredAttendees)
}

// Deadline is the registration deadline, or the event date when none is set.
func (e *Event) Deadline() time.Time {
	if e.RegistrationDeadline != nil {
		return *e.RegistrationDeadline
	}
	return e.Date
}

func (e *Event) IsRegistrationOpen(now time.Time) bool {
	return e.IsActive && now.Before(e.Deadline())
}

func (e *Event) HasAttendee(email string) bool {
	email = NormalizeEmail(email)
	for _, a := range e.RegisteredAttendees {
		if NormalizeEmail(a.Email) == email {
			return true
		}
	}
	return false
}

func (e *Event) IsFull() bool {
	return e.MaxAttendees != nil && e.AttendeeCount() >= *e.MaxAttendees
}

// Registration is the outcome of a successful event registration.
type Registration struct {
	EventTitle    string `json:"eventTitle"`
	AttendeeCount int    `json:"attendeeCount"`
}

type EventListType string

const (
	EventsAll      EventListType = "all"
	EventsUpcoming EventListType = "upcoming"
	EventsPast     EventListType = "past"
)

// EventFilter selects active events relative to Now. Page is 1-based.
type EventFilter struct {
	Type  EventListType
	Limit int
	Page  int
	Now   time.Time
}

// Skip is the number of events before the requested page. It saturates at
// math.MaxInt instead of overflowing on huge page numbers.
func (f EventFilter) Skip() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// Descending reports whether events are ordered newest first.
func (f EventFilter) Descending() bool {
	return f.Type == EventsPast
}

// EventView is the public representation of an event. Attendee emails never leave the API.
type EventView struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Date                 time.Time      `json:"date"`
	Time                 string         `json:"time"`
	Location             string         `json:"location"`
	Image                string         `json:"image"`
	Category             Category       `json:"category"`
	Tags                 []string       `json:"tags"`
	MaxAttendees         *int           `json:"maxAttendees,omitempty"`
	AttendeeCount        int            `json:"attendeeCount"`
	IsRegistrationOpen   bool           `json:"isRegistrationOpen"`
	IsFeatured           bool           `json:"isFeatured"`
	RegistrationDeadline *time.Time     `json:"registrationDeadline,omitempty"`
	Organizer            Organizer      `json:"organizer"`
	RegisteredAttendees  []AttendeeView `json:"registeredAttendees,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

type AttendeeView struct {
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// View renders the event for clients. The roster is included only when withRoster is set.
func (e *Event) View(now time.Time, withRoster bool) EventView {
	v := EventView{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Date:                 e.Date,
		Time:                 e.Time,
		Location:             e.Location,
		Image:                e.Image,
		Category:             e.Category,
		Tags:                 e.Tags,
		MaxAttendees:         e.MaxAttendees,
		AttendeeCount:        e.AttendeeCount(),
		IsRegistrationOpen:   e.IsRegistrationOpen(now),
		IsFeatured:           e.IsFeatured,
		RegistrationDeadline: e.RegistrationDeadline,
		Organizer:            e.Organizer,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}

	if v.Tags == nil {
		v.Tags = []string{}
	}

	if withRoster {
		v.RegisteredAttendees = make([]AttendeeView, 0, len(e.RegisteredAttendees))
		for _, a := range e.RegisteredAttendees {
			v.RegisteredAttendees = append(v.RegisteredAttendees, AttendeeView{
				Name:         a.Name,
				RegisteredAt: a.RegisteredAt,
			})
		}
	}

	return v
}

// NormalizeEmail trims and lowercases an address. Every stored email goes through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
