package registerForEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/lib/validation"
	"elevate/internal/metrics"
	"elevate/internal/models"
	"elevate/internal/storage"
)

const (
	MsgRegistered          = "Successfully registered for the event!"
	MsgEventNotFound       = "Event not found"
	MsgRegistrationClosed  = "Registration is closed for this event"
	MsgAlreadyRegistered   = "You are already registered for this event"
	MsgEventFull           = "Event is full. Registration closed."
	MsgRegistrationFailed  = "Registration failed. Please try again later."
	msgFailedToDecodeInput = "failed to decode request"
)

type Request struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type Response struct {
	response.Response
	Data *models.Registration `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeRegistrar
type AttendeeRegistrar interface {
	RegisterAttendee(ctx context.Context, eventID string, attendee models.Attendee) (*models.Registration, error)
}

func New(log *slog.Logger, registrar AttendeeRegistrar, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerForEvent.New"

		eventID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("event_id", eventID),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msgFailedToDecodeInput))
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)

		if err = validation.Validator().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}

			log.Error("failed to validate request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgRegistrationFailed))
			return
		}

		attendee := models.Attendee{
			Name:         req.Name,
			Email:        models.NormalizeEmail(req.Email),
			RegisteredAt: time.Now().UTC(),
		}

		registration, err := registrar.RegisterAttendee(r.Context(), eventID, attendee)
		if err != nil {
			status, msg, outcome := classify(err)
			m.Registration(outcome)

			if status == http.StatusInternalServerError {
				log.Error("failed to register attendee", sl.Err(err))
			} else {
				log.Info("registration rejected", slog.String("outcome", outcome))
			}

			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		m.Registration(metrics.OutcomeRegistered)
		log.Info("attendee registered", slog.Int("attendee_count", registration.AttendeeCount))

		responseOK(w, r, registration)
	}
}

func classify(err error) (status int, msg, outcome string) {
	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return http.StatusNotFound, MsgEventNotFound, metrics.OutcomeNotFound
	case errors.Is(err, storage.ErrRegistrationClosed):
		return http.StatusBadRequest, MsgRegistrationClosed, metrics.OutcomeClosed
	case errors.Is(err, storage.ErrAlreadyRegistered):
		return http.StatusConflict, MsgAlreadyRegistered, metrics.OutcomeAlreadyRegistered
	case errors.Is(err, storage.ErrEventFull):
		return http.StatusBadRequest, MsgEventFull, metrics.OutcomeFull
	default:
		return http.StatusInternalServerError, MsgRegistrationFailed, metrics.OutcomeError
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registration *models.Registration) {
	render.JSON(w, r, Response{
		Response: response.OK(MsgRegistered),
		Data:     registration,
	})
}
