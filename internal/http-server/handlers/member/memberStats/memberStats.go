package memberStats

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

const MsgFetchFailed = "Failed to fetch statistics"

type Response struct {
	response.Response
	Data *models.MemberStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberStatsProvider
type MemberStatsProvider interface {
	MemberStats(ctx context.Context) (*models.MemberStats, error)
}

func New(log *slog.Logger, provider MemberStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.memberStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := provider.MemberStats(r.Context())
		if err != nil {
			log.Error("failed to get member stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		if stats.InterestStats == nil {
			stats.InterestStats = []models.GroupCount{}
		}
		if stats.YearStats == nil {
			stats.YearStats = []models.GroupCount{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
