package unsubscribe

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
	MsgUnsubscribed        = "Successfully unsubscribed from our newsletter"
	MsgAlreadyUnsubscribed = "You are already unsubscribed from our newsletter"
	MsgNotFound            = "Email not found in our newsletter list"
	MsgUnsubscribeFailed   = "Unsubscription failed. Please try again later."
)

type Request struct {
	Email string `json:"email" validate:"required,email"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Unsubscriber
type Unsubscriber interface {
	Unsubscribe(ctx context.Context, email string, now time.Time) (models.UnsubscribeOutcome, error)
}

func New(log *slog.Logger, unsubscriber Unsubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.newsletter.unsubscribe.New"

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
			render.JSON(w, r, response.Error(MsgUnsubscribeFailed))
			return
		}

		outcome, err := unsubscriber.Unsubscribe(r.Context(), models.NormalizeEmail(req.Email), time.Now().UTC())
		if errors.Is(err, storage.ErrSubscriberNotFound) {
			log.Info("subscriber not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(MsgNotFound))
			return
		}
		if err != nil {
			log.Error("failed to unsubscribe", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgUnsubscribeFailed))
			return
		}

		if outcome == models.AlreadyUnsubscribed {
			render.JSON(w, r, response.OK(MsgAlreadyUnsubscribed))
			return
		}

		log.Info("subscriber deactivated")
		render.JSON(w, r, response.OK(MsgUnsubscribed))
	}
}
