package eventStats

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
)

const MsgFetchFailed = "Failed to fetch events statistics"

type Response struct {
	response.Response
	Data *models.EventStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventStatsProvider
type EventStatsProvider interface {
	EventStats(ctx context.Context, now time.Time) (*models.EventStats, error)
}

func New(log *slog.Logger, provider EventStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := provider.EventStats(r.Context(), time.Now().UTC())
		if err != nil {
			log.Error("failed to get event stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		if stats.CategoryStats == nil {
			stats.CategoryStats = []models.GroupCount{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
