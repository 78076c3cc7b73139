package submitContact

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
	"elevate/internal/notifier"
)

const (
	MsgReceived     = "Thank you for your message! We'll get back to you soon."
	MsgSubmitFailed = "Failed to submit your message. Please try again later."
)

type Request struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
	Type    string `json:"type" validate:"omitempty,max=50"`
}

type ContactData struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Response struct {
	response.Response
	Data *ContactData `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactSaver
type ContactSaver interface {
	SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Notify(n notifier.Notification)
}

func New(log *slog.Logger, saver ContactSaver, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.submitContact.New"

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

		req.trim()

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
			render.JSON(w, r, response.Error(MsgSubmitFailed))
			return
		}

		contact, err := saver.SaveContact(r.Context(), req.contact(time.Now().UTC()))
		if err != nil {
			log.Error("failed to save contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgSubmitFailed))
			return
		}

		log.Info("contact saved", slog.String("contact_id", contact.ID))

		notify.Notify(notifier.ContactReceived(contact, contact.CreatedAt))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(MsgReceived),
			Data: &ContactData{
				ID:     contact.ID,
				Status: contact.Status,
			},
		})
	}
}

func (req *Request) trim() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	req.Type = strings.TrimSpace(req.Type)
}

func (req *Request) contact(now time.Time) models.Contact {
	kind := req.Type
	if kind == "" {
		kind = models.ContactTypeGeneral
	}

	return models.Contact{
		Name:      req.Name,
		Email:     models.NormalizeEmail(req.Email),
		Subject:   req.Subject,
		Message:   req.Message,
		Type:      kind,
		Status:    models.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
