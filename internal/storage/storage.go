package storage

import (
	"context"
	"errors"
	"time"

	"elevate/internal/models"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrEventFull          = errors.New("event is full")
	ErrMemberExists       = errors.New("member already exists")
	ErrMemberNotFound     = errors.New("member not found")
	ErrSubscriberExists   = errors.New("subscriber already active")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Storage is the full persistence surface the API is served from.
type Storage interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	Event(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int64, error)
	// RegisterAttendee appends the attendee in a single atomic step. The attendee's
	// RegisteredAt is the instant the registration window is checked against.
	RegisterAttendee(ctx context.Context, eventID string, attendee models.Attendee) (*models.Registration, error)
	EventStats(ctx context.Context, now time.Time) (*models.EventStats, error)

	SaveMember(ctx context.Context, member models.Member) (models.Member, error)
	MemberByEmail(ctx context.Context, email string) (*models.Member, error)
	MemberStats(ctx context.Context) (*models.MemberStats, error)

	Subscribe(ctx context.Context, subscriber models.Subscriber) (models.SubscribeOutcome, error)
	Unsubscribe(ctx context.Context, email string, now time.Time) (models.UnsubscribeOutcome, error)
	NewsletterStats(ctx context.Context) (*models.NewsletterStats, error)

	SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ContactStats(ctx context.Context) (*models.ContactStats, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
