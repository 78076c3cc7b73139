package newsletterStats

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

const MsgFetchFailed = "Failed to fetch newsletter statistics"

type Response struct {
	response.Response
	Data *models.NewsletterStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NewsletterStatsProvider
type NewsletterStatsProvider interface {
	NewsletterStats(ctx context.Context) (*models.NewsletterStats, error)
}

func New(log *slog.Logger, provider NewsletterStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.newsletter.newsletterStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := provider.NewsletterStats(r.Context())
		if err != nil {
			log.Error("failed to get newsletter stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		if stats.SourceStats == nil {
			stats.SourceStats = []models.GroupCount{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
