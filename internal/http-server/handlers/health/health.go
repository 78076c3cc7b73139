// Package health reports liveness together with process uptime.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elevate/internal/lib/logger/sl"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
)

type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

// New answers with the uptime in seconds since started. A failing store ping
// turns the answer into 503 DEGRADED.
func New(log *slog.Logger, store Pinger, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		resp := Response{
			Status:    StatusOK,
			Timestamp: now,
			Uptime:    now.Sub(started).Seconds(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Warn("storage ping failed", slog.String("op", "handlers.health.New"), sl.Err(err))
			resp.Status = StatusDegraded
			render.Status(r, http.StatusServiceUnavailable)
		}

		render.JSON(w, r, resp)
	}
}
