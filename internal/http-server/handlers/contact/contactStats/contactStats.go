package contactStats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
)

const MsgFetchFailed = "Failed to fetch contact statistics"

type Response struct {
	response.Response
	Data *models.ContactStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactStatsProvider
type ContactStatsProvider interface {
	ContactStats(ctx context.Context) (*models.ContactStats, error)
}

func New(log *slog.Logger, provider ContactStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.contactStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := provider.ContactStats(r.Context())
		if err != nil {
			log.Error("failed to get contact stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		if stats.TypeStats == nil {
			stats.TypeStats = []models.GroupCount{}
		}
		if stats.StatusStats == nil {
			stats.StatusStats = []models.GroupCount{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
