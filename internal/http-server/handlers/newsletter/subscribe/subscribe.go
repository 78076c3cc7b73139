package subscribe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/lib/validation"
	"elevate/internal/models"
	"elevate/internal/storage"
)

const (
	MsgSubscribed      = "Successfully subscribed to our newsletter! 🎉"
	MsgResubscribed    = "Welcome back! Your newsletter subscription has been reactivated."
	MsgAlreadyActive   = "This email is already subscribed to our newsletter"
	MsgSubscribeFailed = "Subscription failed. Please try again later."
)

type Request struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,max=100"`
	Source string `json:"source" validate:"omitempty,oneof=website event referral social"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Subscriber
type Subscriber interface {
	Subscribe(ctx context.Context, subscriber models.Subscriber) (models.SubscribeOutcome, error)
}

func New(log *slog.Logger, subscriber Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.newsletter.subscribe.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Name = strings.TrimSpace(req.Name)

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
			render.JSON(w, r, response.Error(MsgSubscribeFailed))
			return
		}

		outcome, err := subscriber.Subscribe(r.Context(), req.subscriber(time.Now().UTC()))
		if errors.Is(err, storage.ErrSubscriberExists) {
			log.Info("subscriber already active")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error(MsgAlreadyActive))
			return
		}
		if err != nil {
			log.Error("failed to subscribe", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgSubscribeFailed))
			return
		}

		if outcome == models.Resubscribed {
			log.Info("subscriber reactivated")
			render.JSON(w, r, response.OK(MsgResubscribed))
			return
		}

		log.Info("subscriber added")
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK(MsgSubscribed))
	}
}

func (req Request) subscriber(now time.Time) models.Subscriber {
	source := req.Source
	if source == "" {
		source = models.SourceWebsite
	}

	return models.Subscriber{
		Email:        models.NormalizeEmail(req.Email),
		Name:         req.Name,
		IsActive:     true,
		Source:       source,
		Preferences:  models.DefaultPreferences(),
		SubscribedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
