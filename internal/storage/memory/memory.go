// Package memory keeps every collection in process. It backs local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"elevate/internal/models"
	"elevate/internal/storage"
)

type Storage struct {
	mu          sync.RWMutex
	events      map[string]*models.Event
	members     map[string]*models.Member
	subscribers map[string]*models.Subscriber
	contacts    []models.Contact
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		events:      make(map[string]*models.Event),
		members:     make(map[string]*models.Member),
		subscribers: make(map[string]*models.Subscriber),
	}
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}

func (s *Storage) CreateEvent(_ context.Context, event models.Event) (string, error) {
	const op = "storage.memory.CreateEvent"

	if !event.Category.Valid() {
		return "", fmt.Errorf("%s: invalid category %q", op, event.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if _, ok := s.events[event.ID]; ok {
		return "", fmt.Errorf("%s: event %s already exists", op, event.ID)
	}

	for i := range event.RegisteredAttendees {
		event.RegisteredAttendees[i].Email = models.NormalizeEmail(event.RegisteredAttendees[i].Email)
	}

	stored := copyEvent(&event)
	s.events[event.ID] = stored

	return event.ID, nil
}

func (s *Storage) Event(_ context.Context, id string) (*models.Event, error) {
	const op = "storage.memory.Event"

	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return copyEvent(event), nil
}

func (s *Storage) ListEvents(_ context.Context, filter models.EventFilter) ([]models.Event, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		if !e.IsActive {
			continue
		}
		switch filter.Type {
		case models.EventsUpcoming:
			if e.Date.Before(filter.Now) {
				continue
			}
		case models.EventsPast:
			if !e.Date.Before(filter.Now) {
				continue
			}
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.Date.Equal(b.Date) {
			if filter.Descending() {
				return a.Date.After(b.Date)
			}
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	total := int64(len(matched))

	start := min(max(filter.Skip(), 0), len(matched))
	end := len(matched)
	if filter.Limit > 0 && filter.Limit < end-start {
		end = start + filter.Limit
	}

	events := make([]models.Event, 0, end-start)
	for _, e := range matched[start:end] {
		events = append(events, *copyEvent(e))
	}

	return events, total, nil
}

func (s *Storage) RegisterAttendee(_ context.Context, eventID string, attendee models.Attendee) (*models.Registration, error) {
	const op = "storage.memory.RegisterAttendee"

	attendee.Email = models.NormalizeEmail(attendee.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.events[eventID]
	if err := storage.CheckRegistration(event, attendee.Email, attendee.RegisteredAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event.RegisteredAttendees = append(event.RegisteredAttendees, attendee)
	event.UpdatedAt = attendee.RegisteredAt

	return &models.Registration{
		EventTitle:    event.Title,
		AttendeeCount: event.AttendeeCount(),
	}, nil
}

func (s *Storage) EventStats(_ context.Context, now time.Time) (*models.EventStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.EventStats{}
	categories := make([]string, 0, len(s.events))

	for _, e := range s.events {
		if !e.IsActive {
			continue
		}
		stats.TotalEvents++
		if e.Date.Before(now) {
			stats.PastEvents++
		} else {
			stats.UpcomingEvents++
		}
		stats.TotalRegistrations += int64(e.AttendeeCount())
		categories = append(categories, string(e.Category))
	}

	stats.CategoryStats = models.Tally(categories)

	return stats, nil
}

func (s *Storage) SaveMember(_ context.Context, member models.Member) (models.Member, error) {
	const op = "storage.memory.SaveMember"

	member.Email = models.NormalizeEmail(member.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.Email]; ok {
		return models.Member{}, fmt.Errorf("%s: %w", op, storage.ErrMemberExists)
	}

	member.ID = uuid.NewString()
	member.Interests = append([]string(nil), member.Interests...)

	stored := member
	s.members[member.Email] = &stored

	return member, nil
}

func (s *Storage) MemberByEmail(_ context.Context, email string) (*models.Member, error) {
	const op = "storage.memory.MemberByEmail"

	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[models.NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrMemberNotFound)
	}

	found := *member
	return &found, nil
}

func (s *Storage) MemberStats(_ context.Context) (*models.MemberStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.MemberStats{}
	var interests, years []string

	for _, m := range s.members {
		switch m.Status {
		case models.MemberStatusPending:
			stats.PendingMembers++
		case models.MemberStatusApproved:
			stats.TotalMembers++
			interests = append(interests, m.Interests...)
			years = append(years, m.Year)
		}
	}

	stats.InterestStats = models.Tally(interests)
	stats.YearStats = models.SortByKey(models.Tally(years))

	return stats, nil
}

func (s *Storage) Subscribe(_ context.Context, subscriber models.Subscriber) (models.SubscribeOutcome, error) {
	const op = "storage.memory.Subscribe"

	subscriber.Email = models.NormalizeEmail(subscriber.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.subscribers[subscriber.Email]
	if ok {
		if existing.IsActive {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberExists)
		}
		existing.Reactivate(subscriber.Name, subscriber.SubscribedAt)
		return models.Resubscribed, nil
	}

	subscriber.ID = uuid.NewString()
	s.subscribers[subscriber.Email] = &subscriber

	return models.Subscribed, nil
}

func (s *Storage) Unsubscribe(_ context.Context, email string, now time.Time) (models.UnsubscribeOutcome, error) {
	const op = "storage.memory.Unsubscribe"

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.subscribers[models.NormalizeEmail(email)]
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSubscriberNotFound)
	}
	if !existing.IsActive {
		return models.AlreadyUnsubscribed, nil
	}

	existing.Deactivate(now)

	return models.Unsubscribed, nil
}

func (s *Storage) NewsletterStats(_ context.Context) (*models.NewsletterStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.NewsletterStats{}
	var sources []string

	for _, sub := range s.subscribers {
		if sub.IsActive {
			stats.TotalSubscribers++
			sources = append(sources, sub.Source)
		} else {
			stats.TotalUnsubscribed++
		}
	}

	stats.SourceStats = models.Tally(sources)

	return stats, nil
}

func (s *Storage) SaveContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = uuid.NewString()
	s.contacts = append(s.contacts, contact)

	return contact, nil
}

func (s *Storage) ContactStats(_ context.Context) (*models.ContactStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.ContactStats{TotalContacts: int64(len(s.contacts))}
	types := make([]string, 0, len(s.contacts))
	statuses := make([]string, 0, len(s.contacts))

	for _, c := range s.contacts {
		if c.Status == models.ContactStatusNew {
			stats.NewContacts++
		}
		types = append(types, c.Type)
		statuses = append(statuses, c.Status)
	}

	stats.TypeStats = models.Tally(types)
	stats.StatusStats = models.Tally(statuses)

	return stats, nil
}

func copyEvent(e *models.Event) *models.Event {
	c := *e
	c.Tags = append([]string(nil), e.Tags...)
	c.RegisteredAttendees = append([]models.Attendee(nil), e.RegisteredAttendees...)
	if e.MaxAttendees != nil {
		limit := *e.MaxAttendees
		c.MaxAttendees = &limit
	}
	if e.RegistrationDeadline != nil {
		d := *e.RegistrationDeadline
		c.RegistrationDeadline = &d
	}
	return &c
}
