// Package mwratelimit limits requests per client IP over a sliding window.
package mwratelimit

import (
	"math"
	"net/http"

	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"elevate/internal/config"
	"elevate/internal/lib/api/response"
	"elevate/internal/metrics"
)

const (
	LimiterGeneral = "general"
	LimiterForm    = "form"
)

const (
	MsgTooManyRequests = "Too many requests from this IP, please try again later."
	MsgTooManyForms    = "Too many form submissions, please try again later."
)

type Response struct {
	response.Response
	// RetryAfter is the window length in minutes.
	RetryAfter int `json:"retryAfter"`
}

// New allows limit.Requests per limit.Window for each client IP and answers
// 429 with msg once the budget is spent. Rejections are counted under name.
// The client IP is the connection's remote address; forwarding headers only
// count when middleware.RealIP has already rewritten it.
func New(name, msg string, limit config.Limit, m *metrics.Metrics) func(next http.Handler) http.Handler {
	retryAfter := int(math.Ceil(limit.Window.Minutes()))

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			m.RateLimited(name)

			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, Response{
				Response:   response.Error(msg),
				RetryAfter: retryAfter,
			})
		}),
	)
}

func General(limit config.Limit, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return New(LimiterGeneral, MsgTooManyRequests, limit, m)
}

func Form(limit config.Limit, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return New(LimiterForm, MsgTooManyForms, limit, m)
}
