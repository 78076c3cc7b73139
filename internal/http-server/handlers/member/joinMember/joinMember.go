package joinMember

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
	"elevate/internal/storage"
)

const (
	MsgJoined       = "Registration successful! Welcome to Elevate Dev Club."
	MsgMemberExists = "A member with this email already exists"
	MsgJoinFailed   = "Registration failed. Please try again later."
)

type Request struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Year       string   `json:"year" validate:"required,oneof=1st 2nd 3rd 4th graduate"`
	Interests  []string `json:"interests" validate:"required,min=1,dive,interest"`
	Experience string   `json:"experience" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Motivation string   `json:"motivation" validate:"required,min=10,max=1000"`
	Phone      string   `json:"phone" validate:"omitempty,phone"`
	GitHub     string   `json:"github" validate:"omitempty,github"`
	LinkedIn   string   `json:"linkedin" validate:"omitempty,linkedin"`
}

type MemberData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type Response struct {
	response.Response
	Data *MemberData `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberSaver
type MemberSaver interface {
	SaveMember(ctx context.Context, member models.Member) (models.Member, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Notify(n notifier.Notification)
}

func New(log *slog.Logger, saver MemberSaver, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.joinMember.New"

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
			render.JSON(w, r, response.Error(MsgJoinFailed))
			return
		}

		member, err := saver.SaveMember(r.Context(), req.member(time.Now().UTC()))
		if errors.Is(err, storage.ErrMemberExists) {
			log.Info("member already exists")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error(MsgMemberExists))
			return
		}
		if err != nil {
			log.Error("failed to save member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgJoinFailed))
			return
		}

		log.Info("member joined", slog.String("member_id", member.ID))

		notify.Notify(notifier.Welcome(member, member.JoinedAt))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(MsgJoined),
			Data: &MemberData{
				ID:     member.ID,
				Name:   member.Name,
				Email:  member.Email,
				Status: member.Status,
			},
		})
	}
}

func (req *Request) trim() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Motivation = strings.TrimSpace(req.Motivation)
	req.Phone = strings.TrimSpace(req.Phone)
	req.GitHub = strings.TrimSpace(req.GitHub)
	req.LinkedIn = strings.TrimSpace(req.LinkedIn)
}

func (req *Request) member(now time.Time) models.Member {
	experience := req.Experience
	if experience == "" {
		experience = models.ExperienceBeginner
	}

	return models.Member{
		Name:       req.Name,
		Email:      models.NormalizeEmail(req.Email),
		Year:       req.Year,
		Interests:  req.Interests,
		Experience: experience,
		Motivation: req.Motivation,
		Phone:      req.Phone,
		GitHub:     req.GitHub,
		LinkedIn:   req.LinkedIn,
		Status:     models.MemberStatusPending,
		JoinedAt:   now,
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
