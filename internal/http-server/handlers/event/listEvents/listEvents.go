package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"elevate/internal/lib/api/response"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	MsgFetchFailed = "Failed to fetch events"
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalEvents int64 `json:"totalEvents"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type Data struct {
	Events     []models.EventView `json:"events"`
	Pagination Pagination         `json:"pagination"`
}

type Response struct {
	response.Response
	Data *Data `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int64, error)
}

func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter := ParseFilter(r, time.Now().UTC())

		events, total, err := lister.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(MsgFetchFailed))
			return
		}

		views := make([]models.EventView, 0, len(events))
		for i := range events {
			views = append(views, events[i].View(filter.Now, false))
		}

		log.Debug("events listed", slog.Int("count", len(views)), slog.Int64("total", total))

		responseOK(w, r, Data{
			Events:     views,
			Pagination: paginate(filter, len(views), total),
		})
	}
}

// ParseFilter reads type, limit and page from the query string. Unknown or
// malformed values fall back to defaults and limit is capped at MaxLimit.
func ParseFilter(r *http.Request, now time.Time) models.EventFilter {
	q := r.URL.Query()

	filter := models.EventFilter{
		Type:  models.EventsAll,
		Limit: DefaultLimit,
		Page:  1,
		Now:   now,
	}

	switch t := models.EventListType(q.Get("type")); t {
	case models.EventsUpcoming, models.EventsPast:
		filter.Type = t
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = min(limit, MaxLimit)
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}

	return filter
}

func paginate(filter models.EventFilter, returned int, total int64) Pagination {
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return Pagination{
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalEvents: total,
		HasNext:     int64(filter.Skip()+returned) < total,
		HasPrev:     filter.Page > 1,
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, data Data) {
	render.JSON(w, r, Response{
		Response: response.OK(""),
		Data:     &data,
	})
}
