// Package router assembles the HTTP surface: middleware chain, API routes and metrics.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"elevate/internal/config"
	"elevate/internal/http-server/handlers/contact/contactStats"
	"elevate/internal/http-server/handlers/contact/submitContact"
	"elevate/internal/http-server/handlers/event/eventStats"
	"elevate/internal/http-server/handlers/event/getEvent"
	"elevate/internal/http-server/handlers/event/listEvents"
	"elevate/internal/http-server/handlers/event/registerForEvent"
	"elevate/internal/http-server/handlers/health"
	"elevate/internal/http-server/handlers/member/checkEmail"
	"elevate/internal/http-server/handlers/member/joinMember"
	"elevate/internal/http-server/handlers/member/memberStats"
	"elevate/internal/http-server/handlers/newsletter/newsletterStats"
	"elevate/internal/http-server/handlers/newsletter/subscribe"
	"elevate/internal/http-server/handlers/newsletter/unsubscribe"
	"elevate/internal/http-server/middleware/mwlogger"
	"elevate/internal/http-server/middleware/mwmetrics"
	"elevate/internal/http-server/middleware/mwratelimit"
	"elevate/internal/lib/api/response"
	"elevate/internal/metrics"
	"elevate/internal/notifier"
	"elevate/internal/storage"
)

// Notifier accepts notifications without blocking the request.
type Notifier interface {
	Notify(n notifier.Notification)
}

func New(
	log *slog.Logger,
	cfg *config.Config,
	store storage.Storage,
	notify Notifier,
	m *metrics.Metrics,
	started time.Time,
) http.Handler {
	general, form := cfg.Limits()

	router := chi.NewRouter()

	if cfg.RateLimit.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwmetrics.New(m))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(mwratelimit.General(general, m))

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(log, store, started))

		r.Route("/events", func(r chi.Router) {
			// Only event ids are safe to strip a format extension from.
			r.Use(middleware.URLFormat)

			r.Get("/", listEvents.New(log, store))
			r.Get("/stats/overview", eventStats.New(log, store))
			r.Get("/{id}", getEvent.New(log, store))
			r.Post("/{id}/register", registerForEvent.New(log, store, m))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwratelimit.Form(form, m))

			r.Route("/members", func(r chi.Router) {
				r.Post("/join", joinMember.New(log, store, notify))
				r.Get("/check-email/{email}", checkEmail.New(log, store))
				r.Get("/stats", memberStats.New(log, store))
			})

			r.Route("/newsletter", func(r chi.Router) {
				r.Post("/subscribe", subscribe.New(log, store))
				r.Post("/unsubscribe", unsubscribe.New(log, store))
				r.Get("/stats", newsletterStats.New(log, store))
			})

			r.Route("/contact", func(r chi.Router) {
				r.Post("/", submitContact.New(log, store, notify))
				r.Get("/stats", contactStats.New(log, store))
			})
		})
	})

	router.Handle("/metrics", m.Handler())

	return router
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, response.Error(fmt.Sprintf("Route %s not found", r.URL.Path)))
}
