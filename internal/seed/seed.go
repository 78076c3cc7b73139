// Package seed turns event definitions into stored events. Events have no
// creation endpoint, so this is how they get into a store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/lib/validation"
	"elevate/internal/models"
)

type EventRequest struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title" validate:"required,max=200"`
	Description          string           `json:"description" validate:"required,max=2000"`
	Date                 time.Time        `json:"date" validate:"required"`
	Time                 string           `json:"time" validate:"required"`
	Location             string           `json:"location" validate:"required"`
	Image                string           `json:"image" validate:"required"`
	Category             models.Category  `json:"category" validate:"omitempty,oneof=workshop hackathon seminar competition networking other"`
	Tags                 []string         `json:"tags"`
	MaxAttendees         *int             `json:"maxAttendees" validate:"omitempty,min=1,max=1000"`
	RegistrationDeadline *time.Time       `json:"registrationDeadline"`
	IsActive             *bool            `json:"isActive"`
	IsFeatured           bool             `json:"isFeatured"`
	Organizer            models.Organizer `json:"organizer"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
}

// Load decodes a JSON array of events and validates every entry. Errors name
// the offending entry by index.
func Load(r io.Reader, now time.Time) ([]models.Event, error) {
	const op = "seed.Load"

	var reqs []EventRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("%s: failed to decode events: %w", op, err)
	}

	events := make([]models.Event, 0, len(reqs))
	for i, req := range reqs {
		req.trim()

		if err := validation.Validator().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				return nil, fmt.Errorf("%s: event %d: %s", op, i, describe(validateErr))
			}
			return nil, fmt.Errorf("%s: event %d: %w", op, i, err)
		}

		events = append(events, req.event(now))
	}

	return events, nil
}

// Fake generates n upcoming demo events.
func Fake(faker *gofakeit.Faker, n int, now time.Time) []models.Event {
	categories := []models.Category{
		models.CategoryWorkshop,
		models.CategoryHackathon,
		models.CategorySeminar,
		models.CategoryCompetition,
		models.CategoryNetworking,
		models.CategoryOther,
	}

	events := make([]models.Event, 0, n)
	for i := 0; i < n; i++ {
		date := now.Add(time.Duration(faker.IntRange(1, 60)) * 24 * time.Hour).Truncate(time.Hour)
		deadline := date.Add(-24 * time.Hour)
		capacity := faker.IntRange(10, 200)

		events = append(events, models.Event{
			Title:                fmt.Sprintf("%s %s", faker.HackerAdjective(), faker.HackerNoun()),
			Description:          faker.Sentence(20),
			Date:                 date,
			Time:                 date.Format("15:04"),
			Location:             faker.City(),
			Image:                faker.URL(),
			Category:             categories[faker.IntN(len(categories))],
			Tags:                 []string{faker.ProgrammingLanguage(), faker.HackerVerb()},
			MaxAttendees:         &capacity,
			RegistrationDeadline: &deadline,
			IsActive:             true,
			IsFeatured:           faker.Bool(),
			Organizer: models.Organizer{
				Name:  faker.Name(),
				Email: faker.Email(),
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return events
}

// Run stores events one by one and returns how many made it. It keeps going
// past individual failures.
func Run(ctx context.Context, log *slog.Logger, creator EventCreator, events []models.Event) (int, error) {
	const op = "seed.Run"

	log = log.With(slog.String("op", op))

	var (
		created int
		errs    []error
	)
	for _, ev := range events {
		id, err := creator.CreateEvent(ctx, ev)
		if err != nil {
			log.Error("failed to create event", slog.String("title", ev.Title), sl.Err(err))
			errs = append(errs, fmt.Errorf("%q: %w", ev.Title, err))
			continue
		}

		log.Info("event created", slog.String("id", id), slog.String("title", ev.Title))
		created++
	}

	if len(errs) > 0 {
		return created, fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	return created, nil
}

func (req *EventRequest) trim() {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)
	for i := range req.Tags {
		req.Tags[i] = strings.TrimSpace(req.Tags[i])
	}
}

func (req *EventRequest) event(now time.Time) models.Event {
	category := req.Category
	if category == "" {
		category = models.CategoryWorkshop
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Event{
		ID:                   req.ID,
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Image:                req.Image,
		Category:             category,
		Tags:                 tags,
		MaxAttendees:         req.MaxAttendees,
		RegistrationDeadline: req.RegistrationDeadline,
		IsActive:             active,
		IsFeatured:           req.IsFeatured,
		Organizer:            req.Organizer,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range response.ValidationError(errs).Errors {
		msgs = append(msgs, fe.Msg)
	}
	return strings.Join(msgs, "; ")
}
