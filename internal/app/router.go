package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/internal/transport/middleware"
	"github.com/heartmarshall/vocab-line-bot/internal/transport/rest"
)

type routes struct {
	health  *rest.HealthHandler
	webhook http.Handler
	trigger http.Handler
}

func newRouter(logger *slog.Logger, sched config.SchedulerConfig, h routes) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
	)

	r.Get("/", h.health.Root)
	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)

	r.Method(http.MethodPost, "/callback", h.webhook)
	r.Method(http.MethodPost, "/webhook", h.webhook)

	r.Group(func(r chi.Router) {
		r.Use(
			middleware.SchedulerAuth(sched.TriggerToken),
			middleware.RateLimit(sched.RateLimit, sched.RateBurst),
		)
		r.Method(http.MethodPost, "/quiz/broadcast", h.trigger)
		r.Method(http.MethodGet, "/broadcast-quiz", h.trigger)
	})

	return r
}
