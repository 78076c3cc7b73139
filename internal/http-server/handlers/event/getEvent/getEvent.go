package getEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
	"elevate/internal/storage"
)

const (
	MsgEventNotFound = "Event not found"
	MsgFetchFailed   = "Failed to fetch event"
)

type Response struct {
	response.Response
	Data *models.EventView `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	Event(ctx context.Context, id string) (*models.Event, error)
}

func New(log *slog.Logger, provider EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		eventID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("event_id", eventID),
		)

		event, err := provider.Event(r.Context(), eventID)
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(MsgEventNotFound))
			return
		}
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		view := event.View(time.Now().UTC(), true)

		responseOK(w, r, &view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view *models.EventView) {
	render.JSON(w, r, Response{
		Response: response.OK(""),
		Data:     view,
	})
}
