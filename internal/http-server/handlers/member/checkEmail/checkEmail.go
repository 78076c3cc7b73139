package checkEmail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
	"elevate/internal/storage"
)

const MsgCheckFailed = "Failed to check email"

type Response struct {
	response.Response
	Exists bool    `json:"exists"`
	Status *string `json:"status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberFinder
type MemberFinder interface {
	MemberByEmail(ctx context.Context, email string) (*models.Member, error)
}

func New(log *slog.Logger, finder MemberFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.checkEmail.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		email := models.NormalizeEmail(chi.URLParam(r, "email"))

		member, err := finder.MemberByEmail(r.Context(), email)
		if errors.Is(err, storage.ErrMemberNotFound) {
			render.JSON(w, r, Response{Response: response.OK("")})
			return
		}
		if err != nil {
			log.Error("failed to find member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgCheckFailed))
			return
		}

		status := member.Status
		render.JSON(w, r, Response{
			Response: response.OK(""),
			Exists:   true,
			Status:   &status,
		})
	}
}
